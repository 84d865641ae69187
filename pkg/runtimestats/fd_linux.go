//go:build linux

package runtimestats

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// fdUsage reports this process's open file descriptors as a fraction of the
// soft RLIMIT_NOFILE limit.
func fdUsage() (float64, error) {
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		return 0, fmt.Errorf("failed to read /proc/self/fd: %w", err)
	}

	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &limit); err != nil {
		return 0, fmt.Errorf("failed to read RLIMIT_NOFILE: %w", err)
	}
	if limit.Cur == 0 {
		return 0, nil
	}

	return float64(len(entries)) / float64(limit.Cur), nil
}
