package dataset

import (
	"fmt"
	"math/rand"
	"time"

	"vecsum/utils"
)

// Generate produces the benchmark dataset with a fresh non-deterministic
// seed. Runs are not reproducible across invocations on purpose.
func Generate(cfg GeneratorConfig) ([][]int, error) {
	return GenerateWithRand(cfg, utils.NewRand(time.Now().UnixNano()))
}

// GenerateWithRand produces cfg.NumVectors vectors of cfg.VectorSize
// elements each, every element drawn uniformly from
// [cfg.MinValue, cfg.MaxValue]. The explicit rng is the seedable entry
// point for tests.
func GenerateWithRand(cfg GeneratorConfig, rng *rand.Rand) ([][]int, error) {
	if cfg.NumVectors <= 0 || cfg.VectorSize <= 0 {
		return nil, fmt.Errorf("invalid dataset shape: %d vectors of %d elements", cfg.NumVectors, cfg.VectorSize)
	}
	if cfg.MaxValue < cfg.MinValue {
		return nil, fmt.Errorf("invalid value range: [%d, %d]", cfg.MinValue, cfg.MaxValue)
	}

	span := cfg.MaxValue - cfg.MinValue + 1
	vectors := make([][]int, cfg.NumVectors)
	for i := range vectors {
		vec := make([]int, cfg.VectorSize)
		for j := range vec {
			vec[j] = cfg.MinValue + rng.Intn(span)
		}
		vectors[i] = vec
	}

	return vectors, nil
}
