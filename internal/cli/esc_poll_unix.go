//go:build darwin || linux

package cli

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// escFollowedBySequence waits up to timeout for more input after an Esc
// byte. Arrow keys arrive as Esc plus a short sequence; a lone Esc does not.
func escFollowedBySequence(file *os.File, timeout time.Duration) bool {
	if file == nil {
		return false
	}

	ms := int(timeout / time.Millisecond)
	if ms < 0 {
		ms = 0
	}

	fds := []unix.PollFd{{Fd: int32(file.Fd()), Events: unix.POLLIN}}

	ready, err := unix.Poll(fds, ms)
	if err != nil || ready <= 0 {
		return false
	}

	return fds[0].Revents&unix.POLLIN != 0
}
