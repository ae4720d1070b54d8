// Package compiler implements the freshness-checked compilation step,
// grounded on offline_judge.h's Compile (source-exists/target-up-to-date
// short circuits, pipe+fork+exec) and default_runner.go's buildCommand
// (command-template expansion via shlex).
package compiler

import (
	"context"
	"os"
	"strings"

	"offlinejudge/internal/result"
	"offlinejudge/internal/sandbox"
	apperrors "offlinejudge/pkg/errors"

	"github.com/google/shlex"
)

// Request names the source/target pair and compiler invocation to build.
type Request struct {
	Source         string
	Target         string
	CompilerCmd    string
	Args           []string
	Limits         sandbox.ResourceLimits
	StderrPath     string
	Force          bool
	SeccompProfile string
}

// Compile builds Source into Target using CompilerCmd, short-circuiting when
// Target is already up to date (mtime(source) <= mtime(target), ties count
// as up to date) unless Force is set.
func Compile(ctx context.Context, req Request) (result.CompilationResult, error) {
	sourceInfo, err := os.Stat(req.Source)
	if err != nil {
		return result.NewCompilationResult(result.CompilationSourceNotExist, "source file does not exist: "+req.Source, req.CompilerCmd, req.Source, req.Target), nil
	}

	if !req.Force {
		if targetInfo, err := os.Stat(req.Target); err == nil {
			if !sourceInfo.ModTime().After(targetInfo.ModTime()) {
				return result.NewCompilationResult(result.CompilationTargetUpToDate, "target is up to date", req.CompilerCmd, req.Source, req.Target), nil
			}
		}
	}

	args, err := expandCommand(req)
	if err != nil {
		return result.CompilationResult{}, apperrors.Wrapf(err, apperrors.InvalidParams, "build compiler command")
	}

	childReq := sandbox.ChildRequest{
		Program:        args[0],
		Args:           args[1:],
		StdinPath:      "/dev/null",
		StdoutPath:     "/dev/null",
		StderrPath:     req.StderrPath,
		Limits:         req.Limits,
		SeccompProfile: req.SeccompProfile,
		EnableSeccomp:  req.SeccompProfile != "",
	}

	sp, err := sandbox.Spawn(ctx, childReq)
	if err != nil {
		return result.CompilationResult{}, err
	}
	runResult, err := sp.Wait()
	if err != nil {
		return result.CompilationResult{}, err
	}

	message := compileMessage(req.StderrPath)
	if runResult.Outcome.Kind == sandbox.KindExited && runResult.Outcome.Code == 0 {
		return result.NewCompilationResult(result.CompilationSuccess, message, req.CompilerCmd, req.Source, req.Target), nil
	}
	return result.NewCompilationResult(result.CompilationFailed, message, req.CompilerCmd, req.Source, req.Target), nil
}

// expandCommand substitutes {src}/{target} into req.CompilerCmd's argument
// list and tokenizes the surviving free-form arguments, mirroring
// default_runner.go's buildCommand.
func expandCommand(req Request) ([]string, error) {
	args := make([]string, 0, len(req.Args)+1)
	args = append(args, req.CompilerCmd)
	for _, a := range req.Args {
		a = substitute(a, req.Source, req.Target)
		fields, err := shlex.Split(a)
		if err != nil {
			return nil, err
		}
		args = append(args, fields...)
	}
	return args, nil
}

func substitute(s, source, target string) string {
	s = strings.ReplaceAll(s, "{src}", source)
	return strings.ReplaceAll(s, "{target}", target)
}

func compileMessage(stderrPath string) string {
	if stderrPath == "" {
		return ""
	}
	data, err := os.ReadFile(stderrPath)
	if err != nil {
		return ""
	}
	return string(data)
}

// IsModifiedLaterThan reports whether path's modification time is strictly
// after other's, the Go analogue of offline_judge.h's IsModifiedLaterThan.
func IsModifiedLaterThan(path, other string) (bool, error) {
	pInfo, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	oInfo, err := os.Stat(other)
	if err != nil {
		return false, err
	}
	return pInfo.ModTime().After(oInfo.ModTime()), nil
}
