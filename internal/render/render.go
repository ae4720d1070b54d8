// Package render implements the Renderer/Labeler visitor pair over the
// result algebra, grounded on renderer.h/labeler.h's per-leaf virtual
// dispatch (rendered here as a switch over each Kind) and utility.h's
// ANSI color contract. KoreanRenderer/KoreanLabeler supplement the English
// default the same way the original's KoreanRenderer/KoreanLabeler
// subclasses were declared to override it.
package render

import (
	"fmt"
	"io"

	"offlinejudge/internal/result"
	"offlinejudge/internal/verdict"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
)

// Renderer writes a human-readable rendering of a result to a stream.
type Renderer interface {
	RenderCompilation(w io.Writer, r result.CompilationResult)
	RenderExecution(w io.Writer, r result.ExecutionResult)
	RenderJudge(w io.Writer, r result.JudgeResult)
	RenderSubmission(w io.Writer, r result.SubmissionResult)
}

// Labeler produces a short one-line label for a result, for summary
// listings rather than full diagnostic output.
type Labeler interface {
	LabelCompilation(r result.CompilationResult) string
	LabelExecution(r result.ExecutionResult) string
	LabelJudge(r result.JudgeResult) string
	LabelSubmission(r result.SubmissionResult) string
}

// TextRenderer is the default English ANSI-colored Renderer.
type TextRenderer struct{}

func (TextRenderer) RenderCompilation(w io.Writer, r result.CompilationResult) {
	if r.Kind.IsSuccess() {
		colorf(w, ansiGreen, "compilation: %s (%s -> %s)\n", r.Kind, r.Source, r.Target)
		return
	}
	colorf(w, ansiRed, "compilation failed: %s\n%s\n", r.Kind, r.Message)
}

func (TextRenderer) RenderExecution(w io.Writer, r result.ExecutionResult) {
	if r.Kind.IsSuccess() {
		colorf(w, ansiGreen, "execution: %s (cpu %s, mem %dKB, wall %s)\n",
			r.Kind, r.Usage.CPUTime, r.Usage.MemoryKB, r.Usage.WallTime)
		return
	}
	colorf(w, ansiRed, "execution failed: %s (%s)\n", r.Kind, r.Program)
}

func (TextRenderer) RenderJudge(w io.Writer, r result.JudgeResult) {
	switch r.Kind {
	case result.JudgeSuccess:
		colorf(w, ansiGreen, "judge: Correct\n")
	case result.JudgeWrongAnswer:
		colorf(w, ansiRed, "judge: Wrong\n")
		renderDiff(w, r)
	case result.JudgeInvalidOutputFormat:
		colorf(w, ansiYellow, "judge: IllFormed\n")
		renderDiff(w, r)
	default:
		colorf(w, ansiRed, "judge: OutputExceeded\n")
	}
}

func renderDiff(w io.Writer, r result.JudgeResult) {
	for _, line := range r.LineData {
		if line.Status == verdict.LineCorrect {
			continue
		}
		fmt.Fprintf(w, "  line %d: expected %q got %q\n", line.LineNumber, line.Correct, line.User)
	}
}

func (t TextRenderer) RenderSubmission(w io.Writer, r result.SubmissionResult) {
	renderSubmission(t, w, r)
}

// renderSubmission writes a whole submission through rd's own per-stage
// methods, so a Renderer that overrides RenderJudge has it used here too.
func renderSubmission(rd Renderer, w io.Writer, r result.SubmissionResult) {
	rd.RenderCompilation(w, r.Compilation)
	if !r.Compilation.Kind.IsSuccess() {
		return
	}
	for i, exec := range r.Executions {
		fmt.Fprintf(w, "test %d:\n", i+1)
		rd.RenderExecution(w, exec)
		if i < len(r.Judges) {
			rd.RenderJudge(w, r.Judges[i])
		}
	}
	if r.IsSuccess() {
		colorf(w, ansiGreen, "submission: Success\n")
	} else {
		colorf(w, ansiRed, "submission: Failure\n")
	}
}

func colorf(w io.Writer, color, format string, args ...interface{}) {
	fmt.Fprint(w, color)
	fmt.Fprintf(w, format, args...)
	fmt.Fprint(w, ansiReset)
}

// TextLabeler is the default English Labeler, one short line per result.
type TextLabeler struct{}

func (TextLabeler) LabelCompilation(r result.CompilationResult) string {
	if r.Kind.IsSuccess() {
		return "Compiled"
	}
	return "Compile Error"
}

func (TextLabeler) LabelExecution(r result.ExecutionResult) string {
	switch r.Kind {
	case result.ExecutionSuccess:
		return "OK"
	case result.ExecutionTimeout:
		return "Time Limit Exceeded"
	case result.ExecutionMemoryLimitExceeded:
		return "Memory Limit Exceeded"
	case result.ExecutionSegmentationFault, result.ExecutionAbort, result.ExecutionInterrupt,
		result.ExecutionTermination, result.ExecutionKill:
		return "Runtime Error"
	case result.ExecutionBadAlloc, result.ExecutionOutOfRange, result.ExecutionLengthError,
		result.ExecutionInvalidArgument:
		return "Runtime Error"
	default:
		return "Runtime Error"
	}
}

func (TextLabeler) LabelJudge(r result.JudgeResult) string {
	switch r.Kind {
	case result.JudgeSuccess:
		return "Correct"
	case result.JudgeWrongAnswer:
		return "Wrong Answer"
	case result.JudgeInvalidOutputFormat:
		return "Ill-Formed Output"
	default:
		return "Output Limit Exceeded"
	}
}

func (TextLabeler) LabelSubmission(r result.SubmissionResult) string {
	if r.IsSuccess() {
		return "Accepted"
	}
	return "Rejected"
}

// KoreanRenderer renders judge verdict lines with Korean text, matching
// renderer.h's empty-but-declared KoreanRenderer subclass — here filled in
// since the spec's supplemented locale feature needs a real body rather than
// an empty override point. Compilation, execution and submission summary
// lines are the TextRenderer's English ones.
type KoreanRenderer struct {
	TextRenderer
}

// RenderSubmission renders like TextRenderer but with Korean judge verdicts.
func (k KoreanRenderer) RenderSubmission(w io.Writer, r result.SubmissionResult) {
	renderSubmission(k, w, r)
}

func (KoreanRenderer) RenderJudge(w io.Writer, r result.JudgeResult) {
	switch r.Kind {
	case result.JudgeSuccess:
		colorf(w, ansiGreen, "채점: 정답\n")
	case result.JudgeWrongAnswer:
		colorf(w, ansiRed, "채점: 오답\n")
		renderDiff(w, r)
	case result.JudgeInvalidOutputFormat:
		colorf(w, ansiYellow, "채점: 형식 오류\n")
		renderDiff(w, r)
	default:
		colorf(w, ansiRed, "채점: 출력 초과\n")
	}
}

// KoreanLabeler overrides TextLabeler's labels with Korean text.
type KoreanLabeler struct{}

func (KoreanLabeler) LabelCompilation(r result.CompilationResult) string {
	if r.Kind.IsSuccess() {
		return "컴파일 성공"
	}
	return "컴파일 오류"
}

func (KoreanLabeler) LabelExecution(r result.ExecutionResult) string {
	switch r.Kind {
	case result.ExecutionSuccess:
		return "실행 성공"
	case result.ExecutionTimeout:
		return "시간 초과"
	case result.ExecutionMemoryLimitExceeded:
		return "메모리 초과"
	default:
		return "실행 오류"
	}
}

func (KoreanLabeler) LabelJudge(r result.JudgeResult) string {
	switch r.Kind {
	case result.JudgeSuccess:
		return "정답"
	case result.JudgeWrongAnswer:
		return "오답"
	case result.JudgeInvalidOutputFormat:
		return "형식 오류"
	default:
		return "출력 초과"
	}
}

func (KoreanLabeler) LabelSubmission(r result.SubmissionResult) string {
	if r.IsSuccess() {
		return "맞았습니다"
	}
	return "틀렸습니다"
}
