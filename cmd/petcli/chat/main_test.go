package chat

import (
	"testing"

	"go.uber.org/goleak"
)

// The request command spawns the only goroutine this package owns; every
// test that fills the pending slot must leave it cancelled and drained.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
