//go:build linux

// Command judge-init is the child-side setup helper the sandbox package
// re-execs: it applies resource limits, redirects standard streams, loads
// an optional seccomp profile, then execve's the target program. It never
// returns control to its own main except on setup failure, matching
// cmd/sandbox-init's run().
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"offlinejudge/internal/fd"
	"offlinejudge/internal/sandbox"
	"offlinejudge/internal/seccomp"

	"golang.org/x/sys/unix"
)

func main() {
	code := run()
	os.Exit(code)
}

// run performs all pre-exec setup and, on success, replaces this process
// image via unix.Exec — in which case run never returns. It only returns a
// code when setup itself failed, mapping each failure to the sentinel band
// in internal/sandbox so the parent can distinguish "never reached the
// target" from any outcome the target itself produced.
func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			code = int(sentinelForPanic(r))
		}
	}()

	req, err := decodeRequest(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return int(sandbox.CodeProgramNotExist)
	}

	if req.WorkDir != "" {
		if err := os.Chdir(req.WorkDir); err != nil {
			fmt.Fprintln(os.Stderr, "chdir workdir:", err)
			return int(sandbox.CodeProgramNotExist)
		}
	}

	if _, err := exec.LookPath(req.Program); err != nil {
		if _, statErr := os.Stat(req.Program); statErr != nil {
			fmt.Fprintln(os.Stderr, "program not found:", req.Program)
			return int(sandbox.CodeProgramNotExist)
		}
	}

	if req.StdinPath != "" {
		if _, err := os.Stat(req.StdinPath); err != nil {
			fmt.Fprintln(os.Stderr, "input not found:", req.StdinPath)
			return int(sandbox.CodeInputNotExist)
		}
	}

	if err := applyRlimits(req.Limits); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return int(sandbox.CodeDupFailure)
	}

	if err := redirectIO(req); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return int(sandbox.CodeDupFailure)
	}

	if req.EnableSeccomp && req.SeccompProfile != "" {
		cfg, err := seccomp.LoadProfile(req.SeccompProfile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return int(sandbox.CodeExecFailure)
		}
		if err := cfg.Install(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return int(sandbox.CodeExecFailure)
		}
	}

	env := req.Env
	if len(env) == 0 {
		env = []string{"PATH=/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"}
	}

	cmdPath, err := exec.LookPath(req.Program)
	if err != nil {
		cmdPath = req.Program
	}
	argv := append([]string{req.Program}, req.Args...)
	if err := unix.Exec(cmdPath, argv, env); err != nil {
		fmt.Fprintln(os.Stderr, "exec:", err)
		return int(sandbox.CodeExecFailure)
	}
	return int(sandbox.CodeSuccess) // unreachable: unix.Exec does not return on success
}

func decodeRequest(r *os.File) (sandbox.ChildRequest, error) {
	dec := json.NewDecoder(r)
	var req sandbox.ChildRequest
	if err := dec.Decode(&req); err != nil {
		return sandbox.ChildRequest{}, fmt.Errorf("decode child request: %w", err)
	}
	if req.Program == "" {
		return sandbox.ChildRequest{}, fmt.Errorf("program is required")
	}
	return req, nil
}

func applyRlimits(limits sandbox.ResourceLimits) error {
	if limits.CPUTimeMs > 0 {
		seconds := uint64((limits.CPUTimeMs + 999) / 1000)
		if err := unix.Setrlimit(unix.RLIMIT_CPU, &unix.Rlimit{Cur: seconds, Max: seconds}); err != nil {
			return fmt.Errorf("set rlimit cpu: %w", err)
		}
	}
	if limits.MemoryMB > 0 {
		bytes := uint64(limits.MemoryMB) * 1024 * 1024
		if err := unix.Setrlimit(unix.RLIMIT_AS, &unix.Rlimit{Cur: bytes, Max: bytes}); err != nil {
			return fmt.Errorf("set rlimit as: %w", err)
		}
	}
	if limits.OutputMB > 0 {
		bytes := uint64(limits.OutputMB) * 1024 * 1024
		if err := unix.Setrlimit(unix.RLIMIT_FSIZE, &unix.Rlimit{Cur: bytes, Max: bytes}); err != nil {
			return fmt.Errorf("set rlimit fsize: %w", err)
		}
	}
	if limits.StackMB > 0 {
		bytes := uint64(limits.StackMB) * 1024 * 1024
		if err := unix.Setrlimit(unix.RLIMIT_STACK, &unix.Rlimit{Cur: bytes, Max: bytes}); err != nil {
			return fmt.Errorf("set rlimit stack: %w", err)
		}
	}
	if limits.PIDs > 0 {
		val := uint64(limits.PIDs)
		if err := unix.Setrlimit(unix.RLIMIT_NPROC, &unix.Rlimit{Cur: val, Max: val}); err != nil {
			return fmt.Errorf("set rlimit nproc: %w", err)
		}
	}
	return nil
}

// redirectIO points the target's standard streams at the request's paths,
// built entirely on internal/fd's scoped FileDescriptor: each path is opened
// as an owning handle, dup2'd onto the corresponding standard stream (a
// borrowed, non-owning handle over fd 0/1/2), then closed.
func redirectIO(req sandbox.ChildRequest) error {
	stdinPath := req.StdinPath
	if stdinPath == "" {
		stdinPath = "/dev/null"
	}
	stdoutPath := req.StdoutPath
	if stdoutPath == "" {
		stdoutPath = "/dev/null"
	}
	stderrPath := req.StderrPath
	if stderrPath == "" {
		stderrPath = "/dev/null"
	}

	stdinFD, err := fd.Open(stdinPath, fd.In)
	if err != nil {
		return fmt.Errorf("open stdin: %w", err)
	}
	defer stdinFD.Close()

	stdoutFD, err := fd.Open(stdoutPath, fd.Out|fd.Trunc)
	if err != nil {
		return fmt.Errorf("open stdout: %w", err)
	}
	defer stdoutFD.Close()

	stderrFD, err := fd.Open(stderrPath, fd.Out|fd.Trunc)
	if err != nil {
		return fmt.Errorf("open stderr: %w", err)
	}
	defer stderrFD.Close()

	if err := fd.Borrow(int(os.Stdin.Fd())).Redirect(stdinFD); err != nil {
		return fmt.Errorf("redirect stdin: %w", err)
	}
	if err := fd.Borrow(int(os.Stdout.Fd())).Redirect(stdoutFD); err != nil {
		return fmt.Errorf("redirect stdout: %w", err)
	}
	if err := fd.Borrow(int(os.Stderr.Fd())).Redirect(stderrFD); err != nil {
		return fmt.Errorf("redirect stderr: %w", err)
	}
	return nil
}

// sentinelForPanic maps an uncaught panic in judge-init's own setup code to
// the nearest sentinel, the Go rendering of the original's ExceptionHandler
// exception-to-exit-code taxonomy (SPEC_FULL.md §4.B'). This only covers
// bugs in judge-init itself: the target program's own panics/crashes are
// classified from its wait status, not from here.
func sentinelForPanic(r interface{}) sandbox.SentinelCode {
	msg := fmt.Sprint(r)
	if _, ok := r.(runtime.Error); ok {
		switch {
		case strings.Contains(msg, "index out of range"), strings.Contains(msg, "slice bounds out of range"):
			return sandbox.CodeExceptionOutOfRange
		case strings.Contains(msg, "invalid memory address"):
			return sandbox.CodeExceptionInvalidArgument
		}
	}
	switch {
	case strings.Contains(msg, "out of memory"):
		return sandbox.CodeExceptionBadAlloc
	case strings.Contains(msg, "negative length"), strings.Contains(msg, "makeslice"):
		return sandbox.CodeExceptionLengthError
	default:
		return sandbox.CodeException
	}
}
