package utils

import (
	"bytes"
	"runtime/debug"
)

// Stack returns the formatted stack trace of the calling goroutine with the
// first skip frames (each frame being two lines) removed.
func Stack(skip int) []byte {
	stack := debug.Stack()
	lines := bytes.Split(stack, []byte("\n"))
	// line 0 is the goroutine header
	drop := 1 + skip*2
	if drop >= len(lines) {
		return stack
	}
	out := append([][]byte{lines[0]}, lines[drop:]...)
	return bytes.Join(out, []byte("\n"))
}
