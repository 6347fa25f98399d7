//go:build !darwin && !linux

package cli

import (
	"os"
	"time"
)

func escFollowedBySequence(_ *os.File, _ time.Duration) bool {
	return false
}
