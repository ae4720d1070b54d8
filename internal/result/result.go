// Package result implements the judge's tagged-variant result algebra: a
// flat Go rendering of the original class hierarchy (Result ->
// Compilation/Execution/Judge/Submission -> Success/Failure -> specific leaf
// cause), dispatched by a switch on the Kind field instead of virtual
// methods, per SPEC_FULL.md §3's expansion note.
package result

import (
	"time"

	"offlinejudge/internal/verdict"
)

// CompilationKind enumerates every leaf a compilation can land on, preserving
// the names of compilation_result.h's CompilationSuccess/CompilationFailure
// hierarchy.
type CompilationKind int

const (
	CompilationSuccess CompilationKind = iota
	CompilationTargetUpToDate
	CompilationSourceNotExist
	CompilationFailed
)

func (k CompilationKind) IsSuccess() bool {
	return k == CompilationSuccess || k == CompilationTargetUpToDate
}

func (k CompilationKind) String() string {
	switch k {
	case CompilationSuccess:
		return "CompilationSuccess"
	case CompilationTargetUpToDate:
		return "CompilationTargetUpToDate"
	case CompilationSourceNotExist:
		return "CompilationSourceNotExist"
	default:
		return "CompilationFailed"
	}
}

// CompilationResult is the outcome of compiling one source file, mirroring
// CompilationResult's fields in compilation_result.h.
type CompilationResult struct {
	Kind    CompilationKind
	Message string
	Command string
	Source  string
	Target  string
}

// NewCompilationResult is the Go analogue of CreateCompilationResult: it
// builds a CompilationResult from its classified kind plus the surrounding
// compile invocation context.
func NewCompilationResult(kind CompilationKind, message, command, source, target string) CompilationResult {
	return CompilationResult{Kind: kind, Message: message, Command: command, Source: source, Target: target}
}

// ExecutionKind enumerates every leaf a single test-case run can land on,
// preserving the names from execution_result.h's ExecutionSuccess/
// ExecutionFailure/ExecutionFailureResourceUsage/ExecutionFailureException/
// ExecutionFailureSignaled hierarchy.
type ExecutionKind int

const (
	ExecutionSuccess ExecutionKind = iota
	ExecutionFileNotExist
	ExecutionInputNotExist
	ExecutionTimeout
	ExecutionMemoryLimitExceeded
	ExecutionBadAlloc
	ExecutionOutOfRange
	ExecutionLengthError
	ExecutionInvalidArgument
	ExecutionSegmentationFault
	ExecutionAbort
	ExecutionInterrupt
	ExecutionTermination
	ExecutionKill
	ExecutionNonZeroExit
)

func (k ExecutionKind) IsSuccess() bool { return k == ExecutionSuccess }

func (k ExecutionKind) String() string {
	switch k {
	case ExecutionSuccess:
		return "ExecutionSuccess"
	case ExecutionFileNotExist:
		return "ExecutionFailureFileNotExist"
	case ExecutionInputNotExist:
		return "ExecutionFailureInputNotExist"
	case ExecutionTimeout:
		return "ExecutionFailureTimeout"
	case ExecutionMemoryLimitExceeded:
		return "ExecutionFailureMemoryLimitExceeded"
	case ExecutionBadAlloc:
		return "ExecutionFailureBadAlloc"
	case ExecutionOutOfRange:
		return "ExecutionFailureOutOfRange"
	case ExecutionLengthError:
		return "ExecutionFailureLengthError"
	case ExecutionInvalidArgument:
		return "ExecutionFailureInvalidArgument"
	case ExecutionSegmentationFault:
		return "ExecutionFailureSegmentationFault"
	case ExecutionAbort:
		return "ExecutionFailureAbort"
	case ExecutionInterrupt:
		return "ExecutionFailureInterrupt"
	case ExecutionTermination:
		return "ExecutionFailureTermination"
	case ExecutionKill:
		return "ExecutionFailureKill"
	default:
		return "ExecutionFailureNonZeroExit"
	}
}

// Usage is the resource consumption supplementing an ExecutionResult, added
// per SPEC_FULL.md §3's WallTime expansion alongside the original's
// CPU-seconds/memory-KB usage fields.
type Usage struct {
	CPUTime  time.Duration
	MemoryKB int64
	WallTime time.Duration
}

// ExecutionResult is the outcome of running the solution on one test case,
// mirroring ExecutionResult's fields in execution_result.h plus the
// supplemented wall-clock measurement.
type ExecutionResult struct {
	Kind    ExecutionKind
	Program string
	Input   string
	Output  string
	Usage   Usage
}

// NewExecutionResult is the Go analogue of CreateExecutionResult.
func NewExecutionResult(kind ExecutionKind, program, input, output string, usage Usage) ExecutionResult {
	return ExecutionResult{Kind: kind, Program: program, Input: input, Output: output, Usage: usage}
}

// JudgeKind enumerates every leaf a judged test case can land on, preserving
// the names from judge_result.h's JudgeSuccess/JudgeFailure hierarchy. Wrong
// answers are judge failures whose cause is a content mismatch rather than a
// malformed stream.
type JudgeKind int

const (
	JudgeSuccess JudgeKind = iota
	JudgeWrongAnswer
	JudgeInvalidOutputFormat
	JudgeOutputExceeded
)

func (k JudgeKind) IsSuccess() bool { return k == JudgeSuccess }

func (k JudgeKind) String() string {
	switch k {
	case JudgeSuccess:
		return "JudgeSuccess"
	case JudgeWrongAnswer:
		return "JudgeFailureWrongAnswer"
	case JudgeInvalidOutputFormat:
		return "JudgeFailureInvalidOutputFormat"
	default:
		return "JudgeFailureOutputExceeded"
	}
}

// JudgeResult is the outcome of comparing a solution's answer to the correct
// one, mirroring JudgeResult's fields in judge_result.h.
type JudgeResult struct {
	Kind          JudgeKind
	UserAnswer    string
	CorrectAnswer string
	TokenData     []verdict.TokenJudgeData
	LineData      []verdict.LineJudgeData
}

// NewJudgeResult is the Go analogue of CreateJudgeResult: it derives Kind
// from the diff outcome's line-status lattice (Correct -> JudgeSuccess,
// Wrong -> JudgeWrongAnswer, IllFormed -> JudgeInvalidOutputFormat), folding
// every line's tokens into a flat TokenData slice alongside the per-line
// LineData trail.
func NewJudgeResult(outcome verdict.Outcome, userAnswer, correctAnswer string) JudgeResult {
	var kind JudgeKind
	switch outcome.Status {
	case verdict.LineCorrect:
		kind = JudgeSuccess
	case verdict.LineWrong:
		kind = JudgeWrongAnswer
	default:
		kind = JudgeInvalidOutputFormat
	}

	var tokens []verdict.TokenJudgeData
	for _, line := range outcome.Lines {
		tokens = append(tokens, line.Tokens...)
	}

	return JudgeResult{
		Kind:          kind,
		UserAnswer:    userAnswer,
		CorrectAnswer: correctAnswer,
		TokenData:     tokens,
		LineData:      outcome.Lines,
	}
}

// NewOutputExceededJudgeResult reports a test case whose output stream grew
// past the configured output limit before a diff was even attempted,
// mirroring submission_result.h's JudgeFailureOutputExceeded leaf.
func NewOutputExceededJudgeResult(userAnswer, correctAnswer string) JudgeResult {
	return JudgeResult{Kind: JudgeOutputExceeded, UserAnswer: userAnswer, CorrectAnswer: correctAnswer}
}

// SubmissionResult is the end-to-end outcome of one pipeline run: a
// compilation plus one execution/judge pair per test case, mirroring
// submission_result.h's SubmissionSuccess/SubmissionFailure hierarchy.
type SubmissionResult struct {
	Compilation CompilationResult
	Executions  []ExecutionResult
	Judges      []JudgeResult
}

// NewSubmissionResult is the Go analogue of CreateSubmissionResult.
func NewSubmissionResult(compilation CompilationResult, executions []ExecutionResult, judges []JudgeResult) SubmissionResult {
	return SubmissionResult{Compilation: compilation, Executions: executions, Judges: judges}
}

// IsSuccess reports whether every stage of the submission succeeded:
// compilation succeeded (or its target was already up to date), every
// execution ran to completion, and every judge verdict was Correct.
func (s SubmissionResult) IsSuccess() bool {
	if !s.Compilation.Kind.IsSuccess() {
		return false
	}
	for _, e := range s.Executions {
		if !e.Kind.IsSuccess() {
			return false
		}
	}
	for _, j := range s.Judges {
		if !j.Kind.IsSuccess() {
			return false
		}
	}
	return true
}
