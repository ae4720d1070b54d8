// Package executor runs a compiled solution against one test case's input
// under resource limits, classifying the outcome into an
// internal/result.ExecutionResult. Grounded on default_runner.go's
// buildRunSpec/mapRunVerdict, reimplemented atop internal/sandbox.
package executor

import (
	"context"
	"os"

	"offlinejudge/internal/result"
	"offlinejudge/internal/sandbox"
)

// Request names the program to run and the files wiring its standard
// streams, plus the limits it must stay within.
type Request struct {
	Program        string
	Args           []string
	WorkDir        string
	InputPath      string
	OutputPath     string
	Limits         sandbox.ResourceLimits
	SeccompProfile string
}

// Run executes req.Program with its input redirected from InputPath — always
// a concrete path, defaulting to /dev/null when none is given (Open Question
// 1) — and its output captured at OutputPath whenever one is configured
// (Open Question 3), then classifies the result into an ExecutionResult.
func Run(ctx context.Context, req Request) (result.ExecutionResult, error) {
	if req.Program == "" {
		return result.NewExecutionResult(result.ExecutionFileNotExist, req.Program, req.InputPath, req.OutputPath, result.Usage{}), nil
	}
	if _, err := os.Stat(req.Program); err != nil {
		return result.NewExecutionResult(result.ExecutionFileNotExist, req.Program, req.InputPath, req.OutputPath, result.Usage{}), nil
	}

	stdinPath := req.InputPath
	if stdinPath == "" {
		stdinPath = "/dev/null"
	}
	stdoutPath := req.OutputPath

	childReq := sandbox.ChildRequest{
		Program:        req.Program,
		Args:           req.Args,
		WorkDir:        req.WorkDir,
		StdinPath:      stdinPath,
		StdoutPath:     stdoutPath,
		Limits:         req.Limits,
		SeccompProfile: req.SeccompProfile,
		EnableSeccomp:  req.SeccompProfile != "",
	}

	sp, err := sandbox.Spawn(ctx, childReq)
	if err != nil {
		return result.ExecutionResult{}, err
	}
	runResult, err := sp.Wait()
	if err != nil {
		return result.ExecutionResult{}, err
	}

	usage := result.Usage{
		CPUTime:  runResult.Usage.CPUTime,
		MemoryKB: runResult.Usage.MaxRSSKB,
		WallTime: runResult.WallTime,
	}

	kind := classify(runResult.Outcome, req.Limits)
	return result.NewExecutionResult(kind, req.Program, req.InputPath, req.OutputPath, usage), nil
}

// classify maps a sandbox.Outcome to an ExecutionKind, following
// mapRunVerdict's precedence: sentinel exits are decoded first, then
// terminating signals, then the plain exit code. A SIGKILL counts as
// exceeding the memory limit only when a memory limit was configured;
// otherwise it is reported as ExecutionKill.
func classify(outcome sandbox.Outcome, limits sandbox.ResourceLimits) result.ExecutionKind {
	switch outcome.Kind {
	case sandbox.KindSentinel:
		switch outcome.Sentinel {
		case sandbox.CodeProgramNotExist:
			return result.ExecutionFileNotExist
		case sandbox.CodeInputNotExist:
			return result.ExecutionInputNotExist
		case sandbox.CodeTimeout:
			return result.ExecutionTimeout
		case sandbox.CodeOutOfMemory:
			return result.ExecutionMemoryLimitExceeded
		case sandbox.CodeExceptionBadAlloc:
			return result.ExecutionBadAlloc
		case sandbox.CodeExceptionOutOfRange:
			return result.ExecutionOutOfRange
		case sandbox.CodeExceptionLengthError:
			return result.ExecutionLengthError
		case sandbox.CodeExceptionInvalidArgument:
			return result.ExecutionInvalidArgument
		case sandbox.CodeExecFailure:
			return result.ExecutionFileNotExist
		default:
			// CodeDupFailure (stream redirection/rlimit setup failed before
			// exec) has no dedicated ExecutionResult variant in spec.md §3;
			// it is an infrastructure fault rather than a test-outcome the
			// original result hierarchy names, so it falls through here.
			return result.ExecutionNonZeroExit
		}
	case sandbox.KindSignaled:
		switch outcome.Signal {
		case sandbox.SignalSegv:
			return result.ExecutionSegmentationFault
		case sandbox.SignalAbort:
			return result.ExecutionAbort
		case sandbox.SignalInterrupt:
			return result.ExecutionInterrupt
		case sandbox.SignalTerminate:
			return result.ExecutionTermination
		case sandbox.SignalCPULimit:
			// SIGXCPU fires when RLIMIT_CPU's soft limit is crossed, which
			// can happen strictly before the wall-clock watchdog's SIGKILL
			// ever arms (the CPU budget is derived from the same time limit
			// but is not multiplied the way the wall-clock budget is).
			// Treat it as the same timeout outcome the watchdog reports.
			return result.ExecutionTimeout
		case sandbox.SignalKill:
			// RLIMIT_CPU/RLIMIT_AS enforcement kills with SIGKILL; without a
			// raw signal to distinguish CPU exhaustion from memory
			// exhaustion, a configured memory limit takes precedence since
			// the kernel's OOM path is the more common real-world cause.
			if limits.MemoryMB > 0 {
				return result.ExecutionMemoryLimitExceeded
			}
			return result.ExecutionKill
		default:
			return result.ExecutionKill
		}
	default:
		if outcome.Code == 0 {
			return result.ExecutionSuccess
		}
		return result.ExecutionNonZeroExit
	}
}
