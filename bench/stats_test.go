package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vecsum/bench"
)

func TestSummarize(t *testing.T) {
	summary := bench.Summarize([]int64{-5, 10, 1})
	require.Equal(t, int64(-5), summary.Min)
	require.Equal(t, int64(10), summary.Max)
	require.InDelta(t, 2.0, summary.Mean, 1e-9)
}

func TestSummarizeSingleValue(t *testing.T) {
	summary := bench.Summarize([]int64{42})
	require.Equal(t, int64(42), summary.Min)
	require.Equal(t, int64(42), summary.Max)
	require.Equal(t, 42.0, summary.Mean)
}

func TestSummarizeEmpty(t *testing.T) {
	require.Equal(t, bench.SumStats{}, bench.Summarize(nil))
}
