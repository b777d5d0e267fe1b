// config/types.go
package config

import "sync"

// Benchmark parameters. Fixed for the run; there is deliberately no flag
// surface for these.
const (
	NumVectors   = 30000
	VectorSize   = 100
	MinValue     = -1000
	MaxValue     = 1000
	SampleChecks = 10
)

// WorkerCounts lists the trial configurations in ascending order.
var WorkerCounts = []int{1, 2, 4}

// Config structure
type Config struct {
	Debug bool `json:"debug"`
}

// TrialResult records one timed trial.
type TrialResult struct {
	Workers   int
	ElapsedMs float64
	Valid     bool
}

// TrialStats collects results across trials
type TrialStats struct {
	Trials []TrialResult
	mu     sync.Mutex
}

// Lock locks the TrialStats mutex
func (ts *TrialStats) Lock() {
	ts.mu.Lock()
}

// Unlock unlocks the TrialStats mutex
func (ts *TrialStats) Unlock() {
	ts.mu.Unlock()
}
