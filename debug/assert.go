//go:build debug

package debug

// Enabled guards assertions that are more than a single boolean expression,
// so release builds can drop them entirely.
const Enabled = true

func Assert(b bool, message string) {
	if !b {
		panic(message)
	}
}

func AssertErrNil(err error) {
	if err != nil {
		panic(err)
	}
}
