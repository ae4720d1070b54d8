package compiler_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"offlinejudge/internal/compiler"
	"offlinejudge/internal/result"
)

func TestCompileSourceNotExist(t *testing.T) {
	dir := t.TempDir()
	res, err := compiler.Compile(context.Background(), compiler.Request{
		Source:      filepath.Join(dir, "missing.cpp"),
		Target:      filepath.Join(dir, "a.out"),
		CompilerCmd: "g++",
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if res.Kind != result.CompilationSourceNotExist {
		t.Errorf("expected CompilationSourceNotExist, got %s", res.Kind)
	}
}

func TestCompileTargetUpToDate(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.cpp")
	target := filepath.Join(dir, "a.out")

	if err := os.WriteFile(source, []byte("int main(){}"), 0644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if err := os.WriteFile(target, []byte("compiled"), 0644); err != nil {
		t.Fatalf("write target: %v", err)
	}

	res, err := compiler.Compile(context.Background(), compiler.Request{
		Source:      source,
		Target:      target,
		CompilerCmd: "g++",
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if res.Kind != result.CompilationTargetUpToDate {
		t.Errorf("expected CompilationTargetUpToDate, got %s", res.Kind)
	}
}

func TestIsModifiedLaterThan(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "older")
	newer := filepath.Join(dir, "newer")

	if err := os.WriteFile(older, []byte("a"), 0644); err != nil {
		t.Fatalf("write older: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if err := os.WriteFile(newer, []byte("b"), 0644); err != nil {
		t.Fatalf("write newer: %v", err)
	}

	later, err := compiler.IsModifiedLaterThan(newer, older)
	if err != nil {
		t.Fatalf("IsModifiedLaterThan: %v", err)
	}
	if !later {
		t.Fatal("expected newer file to be modified later than older file")
	}
}
