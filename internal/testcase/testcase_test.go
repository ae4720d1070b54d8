package testcase_test

import (
	"os"
	"path/filepath"
	"testing"

	"offlinejudge/internal/testcase"
)

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestNewDiscoversPairedCases(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "01.in", "1 2\n")
	writeTestFile(t, dir, "01.out", "3\n")
	writeTestFile(t, dir, "02.in", "4 5\n")
	writeTestFile(t, dir, "02.out", "9\n")
	writeTestFile(t, dir, "notes.txt", "ignored")

	container, err := testcase.New(dir, ".in", ".out")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if container.Size() != 2 {
		t.Fatalf("expected 2 cases, got %d", container.Size())
	}

	tc, err := container.At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}
	input, err := tc.Input()
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if input != "1 2\n" {
		t.Errorf("unexpected input: %q", input)
	}
}

func TestNewMissingOutputIsError(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "01.in", "1\n")

	if _, err := testcase.New(dir, ".in", ".out"); err == nil {
		t.Fatal("expected error for input with no matching output file")
	}
}

func TestReplaceExtensionRenamesFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "01.txt", "data")

	if err := testcase.ReplaceExtension(dir, ".txt", ".in"); err != nil {
		t.Fatalf("ReplaceExtension: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "01.in")); err != nil {
		t.Fatalf("expected renamed file to exist: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "01.txt")); err == nil {
		t.Fatal("expected original file to no longer exist")
	}
}

func TestEmptyContainer(t *testing.T) {
	dir := t.TempDir()
	container, err := testcase.New(dir, ".in", ".out")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !container.Empty() {
		t.Fatal("expected empty container for directory with no test cases")
	}
}
