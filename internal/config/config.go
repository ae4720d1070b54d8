// Package config loads the judge's INI configuration file, grounded on
// main.cpp's mini::INIFile read plus the eight flat keys it pulls
// (testcase.dir/in/out, user.src/bin/out, compiler.compiler/option),
// supplemented with the resource-limit keys main.cpp hard-codes as a
// literal std::chrono::seconds(10) instead of reading from config.ini, and
// with sandbox.seccomp_profile, which enables syscall filtering for both
// the compiler and executor children when set.
package config

import (
	apperrors "offlinejudge/pkg/errors"

	"github.com/go-ini/ini"
)

// Config is the fully-parsed judge configuration.
type Config struct {
	TestCaseDir     string
	InputExtension  string
	OutputExtension string
	SourcePath      string
	BinaryPath      string
	OutputPath      string
	CompilerCmd     string
	CompilerOption  string
	TimeLimitSec    int64
	TimeLimitUsec   int64
	MemoryLimitMB   int64
	SeccompProfile  string
}

// Load reads and parses the INI file at path.
func Load(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, apperrors.Wrapf(err, apperrors.InvalidParams, "load config file %s", path)
	}

	cfg := Config{
		TestCaseDir:     file.Section("testcase").Key("dir").String(),
		InputExtension:  file.Section("testcase").Key("in").String(),
		OutputExtension: file.Section("testcase").Key("out").String(),
		SourcePath:      file.Section("user").Key("src").String(),
		BinaryPath:      file.Section("user").Key("bin").String(),
		OutputPath:      file.Section("user").Key("out").String(),
		CompilerCmd:     file.Section("compiler").Key("compiler").String(),
		CompilerOption:  file.Section("compiler").Key("option").String(),
		TimeLimitSec:    file.Section("limits").Key("time_limit_sec").MustInt64(10),
		TimeLimitUsec:   file.Section("limits").Key("time_limit_usec").MustInt64(0),
		MemoryLimitMB:   file.Section("limits").Key("memory_limit_mb").MustInt64(256),
		SeccompProfile:  file.Section("sandbox").Key("seccomp_profile").String(),
	}

	if cfg.TestCaseDir == "" || cfg.SourcePath == "" || cfg.CompilerCmd == "" {
		return Config{}, apperrors.New(apperrors.InvalidParams).WithMessage("config is missing required testcase/user/compiler keys")
	}

	return cfg, nil
}
