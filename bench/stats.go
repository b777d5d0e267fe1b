package bench

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SumStats holds the summary statistics of one results buffer.
type SumStats struct {
	Min  int64
	Max  int64
	Mean float64
}

// Summarize computes min, max and arithmetic mean over the results.
func Summarize(results []int64) SumStats {
	if len(results) == 0 {
		return SumStats{}
	}

	vals := make([]float64, len(results))
	for i, r := range results {
		vals[i] = float64(r)
	}

	return SumStats{
		Min:  int64(floats.Min(vals)),
		Max:  int64(floats.Max(vals)),
		Mean: stat.Mean(vals, nil),
	}
}
