package eval_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain asserts that evaluating a graph never leaves a goroutine
// running behind it, backing up the package doc's claim that Evaluate
// does all its work on the calling goroutine.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
