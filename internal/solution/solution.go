// Package solution wraps a user's submitted source file, its compiled
// binary path, and where its output is written, grounded on solution.h/
// solution.cpp's Solution (freshness check plus compile invocation), now
// delegating the actual compile to internal/compiler instead of
// std::system.
package solution

import (
	"context"
	"os"

	"offlinejudge/internal/compiler"
	"offlinejudge/internal/result"
	"offlinejudge/internal/sandbox"
	apperrors "offlinejudge/pkg/errors"
)

// Solution names the three paths a submission touches: its source, its
// compiled binary, and where its program output should land.
type Solution struct {
	SourcePath string
	BinaryPath string
	OutputPath string
}

// New constructs a Solution from its three constituent paths.
func New(sourcePath, binaryPath, outputPath string) Solution {
	return Solution{SourcePath: sourcePath, BinaryPath: binaryPath, OutputPath: outputPath}
}

// IsUpdated reports whether the binary needs rebuilding: it is missing, or
// older than the source. Mirrors Solution::IsUpdated.
func (s Solution) IsUpdated() (bool, error) {
	sourceInfo, err := os.Stat(s.SourcePath)
	if err != nil {
		return false, apperrors.Wrapf(err, apperrors.ErrFreshnessCheck, "stat source %s", s.SourcePath)
	}
	binaryInfo, err := os.Stat(s.BinaryPath)
	if err != nil {
		return true, nil
	}
	return sourceInfo.ModTime().After(binaryInfo.ModTime()), nil
}

// Compile builds the solution's source into its binary path using
// compilerCmd/args, short-circuiting through internal/compiler's own
// freshness check (Solution::Compile's IsUpdated guard, now performed by
// the compiler so the two checks cannot drift apart).
func (s Solution) Compile(ctx context.Context, compilerCmd string, args []string, limits sandbox.ResourceLimits, stderrPath string) (result.CompilationResult, error) {
	return compiler.Compile(ctx, compiler.Request{
		Source:      s.SourcePath,
		Target:      s.BinaryPath,
		CompilerCmd: compilerCmd,
		Args:        args,
		Limits:      limits,
		StderrPath:  stderrPath,
	})
}
