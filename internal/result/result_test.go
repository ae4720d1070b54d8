package result_test

import (
	"testing"

	"offlinejudge/internal/result"
	"offlinejudge/internal/verdict"
)

func TestCompilationKindIsSuccess(t *testing.T) {
	cases := []struct {
		kind    result.CompilationKind
		success bool
	}{
		{result.CompilationSuccess, true},
		{result.CompilationTargetUpToDate, true},
		{result.CompilationSourceNotExist, false},
		{result.CompilationFailed, false},
	}
	for _, c := range cases {
		if got := c.kind.IsSuccess(); got != c.success {
			t.Errorf("%s.IsSuccess() = %v, want %v", c.kind, got, c.success)
		}
	}
}

func TestExecutionKindStringsAreDistinct(t *testing.T) {
	if result.ExecutionFileNotExist.String() == result.ExecutionInputNotExist.String() {
		t.Errorf("ExecutionFileNotExist and ExecutionInputNotExist must render as distinct strings, both gave %s", result.ExecutionFileNotExist)
	}
}

func TestNewJudgeResultDerivesKindFromOutcome(t *testing.T) {
	correct := verdict.Compare("1 2", "1 2")
	if r := result.NewJudgeResult(correct, "1 2", "1 2"); r.Kind != result.JudgeSuccess {
		t.Errorf("expected JudgeSuccess, got %s", r.Kind)
	}

	wrong := verdict.Compare("1 3", "1 2")
	if r := result.NewJudgeResult(wrong, "1 3", "1 2"); r.Kind != result.JudgeWrongAnswer {
		t.Errorf("expected JudgeWrongAnswer, got %s", r.Kind)
	}

	illFormed := verdict.MarkIllFormed(verdict.Compare("1 2", "1 2"))
	if r := result.NewJudgeResult(illFormed, "1 2", "1 2"); r.Kind != result.JudgeInvalidOutputFormat {
		t.Errorf("expected JudgeInvalidOutputFormat, got %s", r.Kind)
	}
}

func TestSubmissionResultIsSuccess(t *testing.T) {
	compilation := result.NewCompilationResult(result.CompilationSuccess, "", "g++", "a.cpp", "a.out")
	execOK := result.NewExecutionResult(result.ExecutionSuccess, "a.out", "in", "out", result.Usage{})
	judgeOK := result.NewJudgeResult(verdict.Compare("1", "1"), "1", "1")

	sub := result.NewSubmissionResult(compilation, []result.ExecutionResult{execOK}, []result.JudgeResult{judgeOK})
	if !sub.IsSuccess() {
		t.Fatal("expected submission to succeed when compilation, execution, and judge all succeed")
	}

	judgeWrong := result.NewJudgeResult(verdict.Compare("2", "1"), "2", "1")
	sub.Judges = []result.JudgeResult{judgeWrong}
	if sub.IsSuccess() {
		t.Fatal("expected submission to fail when any judge result is not Correct")
	}
}
