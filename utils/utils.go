package utils

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// outputMu serializes console output. Concurrent workers report through
// LogMessage, so the lock is held only for the duration of one print.
var outputMu sync.Mutex

// LogMessage writes a timestamped line to the console. Messages with
// show=false are suppressed; debug-only callers pass their debug flag.
func LogMessage(message string, show bool) {
	if !show {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")

	outputMu.Lock()
	fmt.Printf("%s | %s\n", timestamp, message)
	outputMu.Unlock()
}

// FormatCount renders large counts with K/M/G suffixes
func FormatCount(count uint64) string {
	switch {
	case count >= 1_000_000_000:
		return fmt.Sprintf("%.2fG", float64(count)/1_000_000_000)
	case count >= 1_000_000:
		return fmt.Sprintf("%.2fM", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.2fK", float64(count)/1_000)
	default:
		return fmt.Sprintf("%d", count)
	}
}

// NewRand creates a new random number generator with the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
