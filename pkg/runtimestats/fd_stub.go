//go:build !linux

package runtimestats

import "errors"

// fdUsage is a stub; descriptor accounting is only wired up on linux.
func fdUsage() (float64, error) {
	return 0, errors.New("file descriptor statistics not supported on this platform")
}
