package sandbox

import (
	"sync/atomic"

	apperrors "offlinejudge/pkg/errors"
)

// Capability is a move-only proof that the caller is the sole entity allowed
// to spawn a subprocess right now. The engine is single-threaded by design
// (§5): only one Subprocess may be outstanding process-wide at a time. This
// renders the teacher/original's process-global "HasInstance" bool as an
// owned value instead of a package-level flag, per the redesign notes: a
// second Acquire while one is outstanding is a programming error, not a
// condition to silently tolerate.
type Capability struct {
	released *int32
}

var held int32

// Acquire claims the process-wide subprocess capability. It returns
// ErrCapabilityHeld if one is already outstanding.
func Acquire() (Capability, error) {
	if !atomic.CompareAndSwapInt32(&held, 0, 1) {
		return Capability{}, apperrors.New(apperrors.ErrCapabilityHeld)
	}
	released := int32(0)
	return Capability{released: &released}, nil
}

// Release gives up the capability. Calling Release more than once on the
// same Capability value is a no-op.
func (c Capability) Release() {
	if c.released == nil {
		return
	}
	if atomic.CompareAndSwapInt32(c.released, 0, 1) {
		atomic.StoreInt32(&held, 0)
	}
}
