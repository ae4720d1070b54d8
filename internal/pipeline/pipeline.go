// Package pipeline orchestrates one full judge run: compile the solution
// once, then execute and judge it against every discovered test case,
// grounded on main.cpp's end-to-end wiring (TestCaseContainer -> Solution
// .Compile -> per-test-case Launch+Judge loop).
package pipeline

import (
	"context"
	"os"

	"offlinejudge/internal/compiler"
	"offlinejudge/internal/executor"
	"offlinejudge/internal/result"
	"offlinejudge/internal/sandbox"
	"offlinejudge/internal/solution"
	"offlinejudge/internal/testcase"
	"offlinejudge/internal/verdict"
)

// Config names the solution under judgement and the resource limits its
// compilation and each of its test-case runs must stay within.
type Config struct {
	Solution       solution.Solution
	CompilerCmd    string
	CompilerArgs   []string
	CompileLimits  sandbox.ResourceLimits
	CompileLogPath string
	RunLimits      sandbox.ResourceLimits
	SeccompProfile string
}

// Run compiles cfg.Solution, then executes and judges it against every case
// in cases, short-circuiting the per-case loop (but not compilation) as soon
// as compilation itself does not succeed.
func Run(ctx context.Context, cfg Config, cases *testcase.Container) (result.SubmissionResult, error) {
	compilation, err := compiler.Compile(ctx, compiler.Request{
		Source:         cfg.Solution.SourcePath,
		Target:         cfg.Solution.BinaryPath,
		CompilerCmd:    cfg.CompilerCmd,
		Args:           cfg.CompilerArgs,
		Limits:         cfg.CompileLimits,
		StderrPath:     cfg.CompileLogPath,
		SeccompProfile: cfg.SeccompProfile,
	})
	if err != nil {
		return result.SubmissionResult{}, err
	}
	if !compilation.Kind.IsSuccess() {
		return result.NewSubmissionResult(compilation, nil, nil), nil
	}

	executions := make([]result.ExecutionResult, 0, cases.Size())
	judges := make([]result.JudgeResult, 0, cases.Size())

	for i := 0; i < cases.Size(); i++ {
		tc, err := cases.At(i)
		if err != nil {
			return result.SubmissionResult{}, err
		}

		execResult, err := executor.Run(ctx, executor.Request{
			Program:        cfg.Solution.BinaryPath,
			InputPath:      tc.InputPath,
			OutputPath:     cfg.Solution.OutputPath,
			Limits:         cfg.RunLimits,
			SeccompProfile: cfg.SeccompProfile,
		})
		if err != nil {
			return result.SubmissionResult{}, err
		}
		executions = append(executions, execResult)

		// Judging always runs against whatever the solution produced, even
		// an empty or partial stream from a failed execution, matching
		// main.cpp's unconditional Judge call after Launch.
		userAnswer, _ := readOutput(cfg.Solution.OutputPath)
		correctAnswer, err := tc.Output()
		if err != nil {
			return result.SubmissionResult{}, err
		}

		outcome := verdict.Compare(userAnswer, correctAnswer)
		judges = append(judges, result.NewJudgeResult(outcome, userAnswer, correctAnswer))
	}

	return result.NewSubmissionResult(compilation, executions, judges), nil
}

func readOutput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
