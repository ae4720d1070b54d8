package render_test

import (
	"bytes"
	"strings"
	"testing"

	"offlinejudge/internal/render"
	"offlinejudge/internal/result"
	"offlinejudge/internal/verdict"
)

func TestTextLabelerSubmission(t *testing.T) {
	labeler := render.TextLabeler{}

	compilation := result.NewCompilationResult(result.CompilationSuccess, "", "g++", "a.cpp", "a.out")
	judgeOK := result.NewJudgeResult(verdict.Compare("1", "1"), "1", "1")
	sub := result.NewSubmissionResult(compilation, nil, []result.JudgeResult{judgeOK})
	if got := labeler.LabelSubmission(sub); got != "Accepted" {
		t.Errorf("LabelSubmission() = %q, want Accepted", got)
	}

	judgeWrong := result.NewJudgeResult(verdict.Compare("2", "1"), "2", "1")
	sub.Judges = []result.JudgeResult{judgeWrong}
	if got := labeler.LabelSubmission(sub); got != "Rejected" {
		t.Errorf("LabelSubmission() = %q, want Rejected", got)
	}
}

func TestTextRendererCompilationFailure(t *testing.T) {
	var buf bytes.Buffer
	renderer := render.TextRenderer{}
	failure := result.NewCompilationResult(result.CompilationFailed, "undefined reference", "g++", "a.cpp", "a.out")
	renderer.RenderCompilation(&buf, failure)
	if !strings.Contains(buf.String(), "undefined reference") {
		t.Errorf("expected rendered output to contain compiler message, got %q", buf.String())
	}
}

func TestKoreanLabelerJudge(t *testing.T) {
	labeler := render.KoreanLabeler{}
	judgeOK := result.NewJudgeResult(verdict.Compare("1", "1"), "1", "1")
	if got := labeler.LabelJudge(judgeOK); got != "정답" {
		t.Errorf("LabelJudge() = %q, want 정답", got)
	}
}
