//go:build linux

// Package seccomp loads an optional syscall filter profile for the
// judge-init helper to install before exec'ing the target program. Grounded
// on cmd/sandbox-init's applySeccomp/parseSeccompAction.
package seccomp

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	apperrors "offlinejudge/pkg/errors"

	libseccomp "github.com/seccomp/libseccomp-golang"
	"golang.org/x/sys/unix"
)

// Config is the on-disk shape of a seccomp profile: a default action plus
// per-syscall overrides.
type Config struct {
	DefaultAction string   `json:"defaultAction"`
	Syscalls      []Rule   `json:"syscalls"`
}

// Rule allows or kills a named group of syscalls.
type Rule struct {
	Names  []string `json:"names"`
	Action string   `json:"action"`
}

// LoadProfile reads and parses a seccomp profile from path. It does not
// install the filter; call Install for that.
func LoadProfile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, apperrors.Wrapf(err, apperrors.ErrSeccompProfile, "read seccomp profile %s", path)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, apperrors.Wrapf(err, apperrors.ErrSeccompProfile, "parse seccomp profile %s", path)
	}
	return cfg, nil
}

// Install builds a filter from cfg, sets PR_SET_NO_NEW_PRIVS, and loads it
// into the current (child) process. Must be called after all other
// pre-exec setup, since no further privileged syscalls are possible once
// the filter is active.
func (cfg Config) Install() error {
	defaultAction, err := parseAction(cfg.DefaultAction)
	if err != nil {
		return err
	}
	filter, err := libseccomp.NewFilter(defaultAction)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrSeccompProfile, "create seccomp filter")
	}
	for _, rule := range cfg.Syscalls {
		action, err := parseAction(rule.Action)
		if err != nil {
			return err
		}
		for _, name := range rule.Names {
			if err := filter.AddRuleExact(name, action); err != nil {
				return apperrors.Wrapf(err, apperrors.ErrSeccompProfile, "add seccomp rule for %s", name)
			}
		}
	}
	if err := unix.Prctl(unix.PR_SET_NO_NEW_PRIVS, 1, 0, 0, 0); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrSeccompProfile, "set no new privs")
	}
	if err := filter.Load(); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrSeccompProfile, "load seccomp filter")
	}
	return nil
}

func parseAction(action string) (libseccomp.ScmpAction, error) {
	switch strings.ToUpper(action) {
	case "SCMP_ACT_ALLOW":
		return libseccomp.ActAllow, nil
	case "SCMP_ACT_KILL", "SCMP_ACT_KILL_PROCESS":
		return libseccomp.ActKillProcess, nil
	default:
		return libseccomp.ActKillProcess, fmt.Errorf("unsupported seccomp action: %s", action)
	}
}
