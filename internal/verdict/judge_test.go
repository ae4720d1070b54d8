package verdict_test

import (
	"testing"

	"offlinejudge/internal/verdict"
)

func TestCompareExactMatch(t *testing.T) {
	out := verdict.Compare("1 2 3\n4 5\n", "1 2 3\n4 5\n")
	if out.Status != verdict.LineCorrect {
		t.Fatalf("expected LineCorrect, got %s", out.Status)
	}
	if len(out.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(out.Lines))
	}
}

func TestCompareWhitespaceInsensitive(t *testing.T) {
	out := verdict.Compare("1   2 3", "1 2 3")
	if out.Status != verdict.LineCorrect {
		t.Fatalf("expected LineCorrect for differing whitespace, got %s", out.Status)
	}
}

func TestCompareWrongToken(t *testing.T) {
	out := verdict.Compare("1 2 4", "1 2 3")
	if out.Status != verdict.LineWrong {
		t.Fatalf("expected LineWrong, got %s", out.Status)
	}
}

func TestCompareUnevenLineCounts(t *testing.T) {
	out := verdict.Compare("1\n2\n3\n", "1\n2\n")
	if out.Status != verdict.LineWrong {
		t.Fatalf("expected LineWrong for extra trailing line, got %s", out.Status)
	}
	if len(out.Lines) != 3 {
		t.Fatalf("expected 3 lines compared, got %d", len(out.Lines))
	}
	if out.Lines[2].Correct != "" {
		t.Fatalf("expected exhausted side to contribute empty string, got %q", out.Lines[2].Correct)
	}
}

func TestCompareBothEmpty(t *testing.T) {
	out := verdict.Compare("", "")
	if out.Status != verdict.LineCorrect {
		t.Fatalf("expected LineCorrect for two empty streams, got %s", out.Status)
	}
	if len(out.Lines) != 0 {
		t.Fatalf("expected no lines compared, got %d", len(out.Lines))
	}
}

func TestMarkIllFormedEscalates(t *testing.T) {
	out := verdict.Compare("1 2", "1 2")
	out = verdict.MarkIllFormed(out)
	if out.Status != verdict.LineIllFormed {
		t.Fatalf("expected LineIllFormed after escalation, got %s", out.Status)
	}
	for _, line := range out.Lines {
		if line.Status != verdict.LineIllFormed {
			t.Fatalf("expected every line escalated to IllFormed, got %s", line.Status)
		}
	}
}
