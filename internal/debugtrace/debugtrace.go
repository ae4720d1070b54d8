//go:build judge_debug

// Package debugtrace is the Go analogue of utility.h's DEBUG_MSG macro: a
// trace that only exists in debug builds (-tags judge_debug), reusing the
// teacher's logger.CallerField for the file:line prefix instead of
// __FILE__/__LINE__.
package debugtrace

import (
	"context"
	"fmt"

	"offlinejudge/pkg/utils/logger"
)

// Msg logs a formatted debug trace. It compiles away entirely (this file is
// excluded from the build) unless built with -tags judge_debug, matching
// DEBUG_MSG's #ifndef NDEBUG gate.
func Msg(format string, args ...interface{}) {
	logger.Debug(context.Background(), fmt.Sprintf(format, args...), logger.CallerField(2))
}
