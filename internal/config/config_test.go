package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"offlinejudge/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadParsesFlatKeys(t *testing.T) {
	path := writeConfig(t, `
[testcase]
dir = ./testcases
in = .in
out = .out

[user]
src = ./solution.cpp
bin = ./solution.out
out = ./output.txt

[compiler]
compiler = g++
option = -O2 -std=c++17
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TestCaseDir != "./testcases" || cfg.InputExtension != ".in" || cfg.OutputExtension != ".out" {
		t.Errorf("unexpected testcase section: %+v", cfg)
	}
	if cfg.SourcePath != "./solution.cpp" || cfg.BinaryPath != "./solution.out" {
		t.Errorf("unexpected user section: %+v", cfg)
	}
	if cfg.CompilerCmd != "g++" || cfg.CompilerOption != "-O2 -std=c++17" {
		t.Errorf("unexpected compiler section: %+v", cfg)
	}
	if cfg.TimeLimitSec != 10 {
		t.Errorf("expected default time_limit_sec of 10, got %d", cfg.TimeLimitSec)
	}
}

func TestLoadSupplementedLimitKeys(t *testing.T) {
	path := writeConfig(t, `
[testcase]
dir = ./testcases
in = .in
out = .out

[user]
src = ./solution.cpp
bin = ./solution.out
out = ./output.txt

[compiler]
compiler = g++
option =

[limits]
time_limit_sec = 2
time_limit_usec = 500000
memory_limit_mb = 128
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TimeLimitSec != 2 || cfg.TimeLimitUsec != 500000 || cfg.MemoryLimitMB != 128 {
		t.Errorf("unexpected limits section: %+v", cfg)
	}
}

func TestLoadSeccompProfileKey(t *testing.T) {
	path := writeConfig(t, `
[testcase]
dir = ./testcases
in = .in
out = .out

[user]
src = ./solution.cpp
bin = ./solution.out
out = ./output.txt

[compiler]
compiler = g++
option =

[sandbox]
seccomp_profile = ./profiles/default.json
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SeccompProfile != "./profiles/default.json" {
		t.Errorf("SeccompProfile = %q, want ./profiles/default.json", cfg.SeccompProfile)
	}
}

func TestLoadSeccompProfileDefaultsEmpty(t *testing.T) {
	path := writeConfig(t, `
[testcase]
dir = ./testcases
in = .in
out = .out

[user]
src = ./solution.cpp
bin = ./solution.out
out = ./output.txt

[compiler]
compiler = g++
option =
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SeccompProfile != "" {
		t.Errorf("SeccompProfile = %q, want empty when unconfigured", cfg.SeccompProfile)
	}
}

func TestLoadMissingRequiredKeyIsError(t *testing.T) {
	path := writeConfig(t, `
[testcase]
dir =
`)
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error when required keys are missing")
	}
}
