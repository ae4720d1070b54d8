// Command offlinejudge is the CLI entry point wiring config, the pipeline
// driver, and the renderer together, grounded on main.cpp's top-level
// wiring shape (mINI::INIFile read -> TestCaseContainer -> Solution.Compile
// -> per-test-case Launch+Judge loop -> two-column rendered diff).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"offlinejudge/internal/config"
	"offlinejudge/internal/debugtrace"
	"offlinejudge/internal/pipeline"
	"offlinejudge/internal/render"
	"offlinejudge/internal/sandbox"
	"offlinejudge/internal/solution"
	"offlinejudge/internal/testcase"
)

func main() {
	configPath := flag.String("config", "config.ini", "path to the judge's INI configuration file")
	korean := flag.Bool("korean", false, "render verdicts in Korean")
	flag.Parse()

	if err := run(*configPath, *korean); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, korean bool) error {
	debugtrace.Msg("loading config from %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	debugtrace.Msg("discovering test cases under %s", cfg.TestCaseDir)
	cases, err := testcase.New(cfg.TestCaseDir, cfg.InputExtension, cfg.OutputExtension)
	if err != nil {
		return err
	}

	sol := solution.New(cfg.SourcePath, cfg.BinaryPath, cfg.OutputPath)

	pipelineCfg := pipeline.Config{
		Solution:    sol,
		CompilerCmd: cfg.CompilerCmd,
		CompilerArgs: []string{
			"{src}", "-o", "{target}", cfg.CompilerOption,
		},
		CompileLimits: sandbox.ResourceLimits{
			CPUTimeMs:  int64(cfg.TimeLimitSec) * 1000,
			WallTimeMs: int64(cfg.TimeLimitSec) * 1000 * 4,
			MemoryMB:   cfg.MemoryLimitMB,
		},
		RunLimits: sandbox.ResourceLimits{
			CPUTimeMs:  int64(cfg.TimeLimitSec)*1000 + int64(cfg.TimeLimitUsec)/1000,
			WallTimeMs: int64(cfg.TimeLimitSec)*1000*2 + int64(cfg.TimeLimitUsec)/1000,
			MemoryMB:   cfg.MemoryLimitMB,
		},
		SeccompProfile: cfg.SeccompProfile,
	}

	debugtrace.Msg("compiling user solution")
	submission, err := pipeline.Run(context.Background(), pipelineCfg, cases)
	if err != nil {
		return err
	}

	var renderer render.Renderer = render.TextRenderer{}
	if korean {
		renderer = render.KoreanRenderer{}
	}
	renderer.RenderSubmission(os.Stdout, submission)
	return nil
}
