package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/garagon/yacare/internal/stats"
)

func TestQuantile(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5}
	require.Equal(t, 1.0, stats.Quantile(vals, 0))
	require.Equal(t, 3.0, stats.Quantile(vals, 0.5))
	require.Equal(t, 5.0, stats.Quantile(vals, 1))
	// Type-7 interpolation: h = 4*0.25 = 1 exactly.
	require.Equal(t, 2.0, stats.Quantile(vals, 0.25))

	// Even length interpolates between order statistics.
	require.Equal(t, 2.5, stats.Quantile([]float64{1, 2, 3, 4}, 0.5))
	require.InDelta(t, 1.75, stats.Quantile([]float64{1, 2, 3, 4}, 0.25), 1e-12)

	require.True(t, math.IsNaN(stats.Quantile(nil, 0.5)))
}

func TestQuantileDoesNotMutateInput(t *testing.T) {
	vals := []float64{3, 1, 2}
	stats.Quantile(vals, 0.5)
	require.Equal(t, []float64{3, 1, 2}, vals)
}

func TestFences(t *testing.T) {
	// Q1=1, Q3=1, IQR=0: fences collapse onto the quartiles.
	lower, upper := stats.Fences([]float64{1, 1, 1, 1, 100})
	require.Equal(t, 1.0, lower)
	require.Equal(t, 1.0, upper)
}

func TestOutlierCount(t *testing.T) {
	require.Equal(t, 1, stats.OutlierCount([]float64{1, 1, 1, 1, 100}))
	require.Equal(t, 0, stats.OutlierCount([]float64{1, 2, 3, 4, 5}))
	require.Equal(t, 0, stats.OutlierCount(nil))

	// Symmetric spread with one extreme low value.
	require.Equal(t, 1, stats.OutlierCount([]float64{-100, 10, 11, 12, 13, 14}))
}

func TestSkewness(t *testing.T) {
	// Symmetric data has zero skewness.
	require.InDelta(t, 0, stats.Skewness([]float64{1, 2, 3, 4, 5}), 1e-12)

	// Right tail pulls skewness positive, left tail negative.
	require.Greater(t, stats.Skewness([]float64{1, 1, 1, 1, 100}), 0.0)
	require.Less(t, stats.Skewness([]float64{-100, 1, 1, 1, 1}), 0.0)

	// g1 for {0,0,1}: mean=1/3, m2=2/9, m3=2/27 - ... known value 1/sqrt(2).
	require.InDelta(t, 0.7071067811865475, stats.Skewness([]float64{0, 0, 1}), 1e-12)
}

func TestSkewnessUndefined(t *testing.T) {
	require.True(t, math.IsNaN(stats.Skewness(nil)))
	require.True(t, math.IsNaN(stats.Skewness([]float64{1, 2})))
	require.True(t, math.IsNaN(stats.Skewness([]float64{5, 5, 5, 5})))
}

func TestRound3(t *testing.T) {
	require.Equal(t, 33.333, stats.Round3(100.0/3))
	require.Equal(t, 0.001, stats.Round3(0.0005))
	require.Equal(t, -0.001, stats.Round3(-0.0005))
	require.Equal(t, 20.0, stats.Round3(20))
	require.True(t, math.IsNaN(stats.Round3(math.NaN())))
}
