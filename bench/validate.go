package bench

import (
	"fmt"
	"math/rand"
	"time"

	"vecsum/utils"
)

// ValidateResults recomputes the sums of randomly sampled vectors and
// compares them bit-exactly against the stored results. Samples are drawn
// with replacement, so duplicates are allowed. This is a sampling check,
// not an exhaustive proof.
func ValidateResults(vectors [][]int, results []int64, samples int) error {
	return ValidateWithRand(vectors, results, samples, utils.NewRand(time.Now().UnixNano()))
}

// ValidateWithRand is the seedable variant used by tests. It stops at the
// first mismatch and reports the failing index.
func ValidateWithRand(vectors [][]int, results []int64, samples int, rng *rand.Rand) error {
	for check := 0; check < samples; check++ {
		idx := rng.Intn(len(vectors))

		var expected int64
		for _, v := range vectors[idx] {
			expected += int64(v)
		}

		if results[idx] != expected {
			return fmt.Errorf("sum mismatch for vector %d: expected %d, got %d", idx, expected, results[idx])
		}
	}
	return nil
}
