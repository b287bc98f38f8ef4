//go:build !debug

// Package debug provides assertions compiled in with the debug build tag and
// compiled to no-ops otherwise. Precondition violations in the render
// pipeline are undefined behavior by contract; these assertions make them
// loud during development without costing the release hot path anything.
package debug

// Enabled guards assertions that are more than a single boolean expression,
// so release builds can drop them entirely.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
