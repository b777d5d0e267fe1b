package bench

import (
	"sync"
	"time"
)

// MeasureTrial runs one timed trial with the given worker count: partitions
// the dataset, launches one worker per range, waits for all of them and
// returns the elapsed wall-clock time in fractional milliseconds. The clock
// covers partitioning through the join barrier only; generation and
// validation happen outside it. workers=1 degenerates to a fully sequential
// pass over a single partition.
func MeasureTrial(vectors [][]int, results []int64, workers int, debug bool) float64 {
	start := time.Now()

	ranges := PartitionRanges(len(vectors), workers)

	var wg sync.WaitGroup
	for i, r := range ranges {
		wg.Add(1)
		go runWorker(&wg, vectors, results, r, i+1, debug)
	}
	wg.Wait()

	return float64(time.Since(start).Microseconds()) / 1000.0
}

// ResetResults zeroes the buffer so no previous trial's values survive into
// the next one.
func ResetResults(results []int64) {
	for i := range results {
		results[i] = 0
	}
}
