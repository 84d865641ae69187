package runtimestats

import "strings"

// Goroutine state buckets reported in a snapshot.
const (
	StateRunning  = "running"
	StateRunnable = "runnable"
	StateSyscall  = "syscall"
	StateWaiting  = "waiting"
)

// parseGoroutineStates buckets the header lines of a full stack dump by
// scheduler state and returns each bucket's fraction of the total. Header
// lines look like "goroutine 12 [chan receive, 3 minutes]:"; everything that
// is not running, runnable, or in a syscall counts as waiting. All four
// buckets are always present.
func parseGoroutineStates(dump []byte) map[string]float64 {
	counts := map[string]int{
		StateRunning:  0,
		StateRunnable: 0,
		StateSyscall:  0,
		StateWaiting:  0,
	}

	total := 0
	for _, line := range strings.Split(string(dump), "\n") {
		rest, ok := strings.CutPrefix(line, "goroutine ")
		if !ok {
			continue
		}
		open := strings.IndexByte(rest, '[')
		end := strings.IndexByte(rest, ']')
		if open < 0 || end < open {
			continue
		}
		state := rest[open+1 : end]
		if i := strings.IndexByte(state, ','); i >= 0 {
			state = state[:i]
		}
		counts[bucketState(state)]++
		total++
	}

	states := make(map[string]float64, len(counts))
	for state, n := range counts {
		if total > 0 {
			states[state] = float64(n) / float64(total)
		} else {
			states[state] = 0
		}
	}
	return states
}

func bucketState(state string) string {
	switch state {
	case "running":
		return StateRunning
	case "runnable":
		return StateRunnable
	case "syscall":
		return StateSyscall
	default:
		return StateWaiting
	}
}
