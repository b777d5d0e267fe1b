package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vecsum/dataset"
	"vecsum/utils"
)

func TestGenerateWithRandShapeAndBounds(t *testing.T) {
	cfg := dataset.GeneratorConfig{
		NumVectors: 200,
		VectorSize: 50,
		MinValue:   -1000,
		MaxValue:   1000,
	}

	vectors, err := dataset.GenerateWithRand(cfg, utils.NewRand(5))
	require.NoError(t, err)
	require.Len(t, vectors, cfg.NumVectors)

	for i, vec := range vectors {
		require.Len(t, vec, cfg.VectorSize, "vector %d", i)
		for _, v := range vec {
			require.GreaterOrEqual(t, v, cfg.MinValue)
			require.LessOrEqual(t, v, cfg.MaxValue)
		}
	}
}

func TestGenerateWithRandIsSeedDeterministic(t *testing.T) {
	cfg := dataset.GeneratorConfig{NumVectors: 20, VectorSize: 10, MinValue: 0, MaxValue: 9}

	first, err := dataset.GenerateWithRand(cfg, utils.NewRand(77))
	require.NoError(t, err)
	second, err := dataset.GenerateWithRand(cfg, utils.NewRand(77))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestGenerateWithRandDegenerateRange(t *testing.T) {
	cfg := dataset.GeneratorConfig{NumVectors: 5, VectorSize: 5, MinValue: 3, MaxValue: 3}

	vectors, err := dataset.GenerateWithRand(cfg, utils.NewRand(1))
	require.NoError(t, err)
	for _, vec := range vectors {
		for _, v := range vec {
			require.Equal(t, 3, v)
		}
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	_, err := dataset.GenerateWithRand(dataset.GeneratorConfig{NumVectors: 0, VectorSize: 10}, utils.NewRand(1))
	require.Error(t, err)

	_, err = dataset.GenerateWithRand(dataset.GeneratorConfig{NumVectors: 10, VectorSize: -1}, utils.NewRand(1))
	require.Error(t, err)

	_, err = dataset.GenerateWithRand(dataset.GeneratorConfig{NumVectors: 10, VectorSize: 10, MinValue: 5, MaxValue: 4}, utils.NewRand(1))
	require.Error(t, err)
}

func TestGenerateUsesFreshSeed(t *testing.T) {
	cfg := dataset.GeneratorConfig{NumVectors: 10, VectorSize: 10, MinValue: -1000, MaxValue: 1000}

	vectors, err := dataset.Generate(cfg)
	require.NoError(t, err)
	require.Len(t, vectors, cfg.NumVectors)
}
