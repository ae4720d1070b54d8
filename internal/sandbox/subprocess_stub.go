//go:build !linux

package sandbox

import (
	"context"

	apperrors "offlinejudge/pkg/errors"
)

// Subprocess on non-Linux platforms is a stub: rlimits, wait4 rusage and
// process-group signaling are POSIX/Linux facilities this engine does not
// attempt to emulate elsewhere, matching engine_stub.go's split.
type Subprocess struct{}

// Spawn always fails on non-Linux platforms.
func Spawn(ctx context.Context, req ChildRequest) (*Subprocess, error) {
	return nil, apperrors.New(apperrors.ErrProcessSpawn).WithMessage("subprocess sandboxing is only supported on linux")
}

// Pid always returns -1 on the stub.
func (s *Subprocess) Pid() int { return -1 }

// Wait always fails on the stub.
func (s *Subprocess) Wait() (Result, error) {
	return Result{}, apperrors.New(apperrors.ErrProcessWait).WithMessage("subprocess sandboxing is only supported on linux")
}
