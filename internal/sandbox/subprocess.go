package sandbox

import "time"

// ResourceLimits bounds a child's consumption. A zero field means "no
// limit" for that dimension, matching the original's "0 disables" handler
// convention (SetMemoryLimit/SetTimeLimit no-op when their argument is 0).
type ResourceLimits struct {
	CPUTimeMs  int64
	WallTimeMs int64
	MemoryMB   int64
	StackMB    int64
	OutputMB   int64
	PIDs       int64
}

// ChildRequest is the JSON payload handed to the judge-init helper over its
// stdin pipe: everything it needs to finish setting up the child and exec
// the target program. Field names are part of the wire contract with
// cmd/judge-init and must stay in sync.
type ChildRequest struct {
	Program        string         `json:"program"`
	Args           []string       `json:"args"`
	Env            []string       `json:"env"`
	WorkDir        string         `json:"workDir"`
	StdinPath      string         `json:"stdinPath"`
	StdoutPath     string         `json:"stdoutPath"`
	StderrPath     string         `json:"stderrPath"`
	Limits         ResourceLimits `json:"limits"`
	SeccompProfile string         `json:"seccompProfile,omitempty"`
	EnableSeccomp  bool           `json:"enableSeccomp"`
}

// Usage captures resource consumption reported by wait4's rusage, the Go
// analogue of Subprocess::usage() in subprocess.h.
type Usage struct {
	CPUTime  time.Duration
	MaxRSSKB int64
}

// Result is what waiting on a Subprocess yields: its classified outcome,
// measured resource usage, and parent-observed wall-clock time.
type Result struct {
	Outcome  Outcome
	Usage    Usage
	WallTime time.Duration
}

// HelperPath is the name (or path) of the judge-init binary Spawn re-execs
// to perform child-side setup. Overridable for tests.
var HelperPath = "judge-init"
