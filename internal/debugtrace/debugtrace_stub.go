//go:build !judge_debug

// Package debugtrace's default build provides a no-op Msg, so callers never
// need a build-tag guard of their own.
package debugtrace

// Msg is a no-op unless built with -tags judge_debug.
func Msg(format string, args ...interface{}) {}
