// Package stats implements the numeric primitives behind the diagnostics:
// quartiles, Tukey fences, and sample skewness. All functions operate on
// plain float64 slices of non-missing values and return NaN where a statistic
// is undefined rather than reporting an error.
package stats

import (
	"math"
	"sort"
)

// Quantile computes the p-quantile (0 <= p <= 1) of vals using linear
// interpolation between order statistics (R's default type-7 estimator).
// Returns NaN for an empty slice.
func Quantile(vals []float64, p float64) float64 {
	n := len(vals)
	if n == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	h := float64(n-1) * p
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}

// Fences returns the Tukey box-plot fences: values below lower or above upper
// are outliers. The fences sit 1.5 interquartile ranges beyond the nearest
// quartile.
func Fences(vals []float64) (lower, upper float64) {
	q1 := Quantile(vals, 0.25)
	q3 := Quantile(vals, 0.75)
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr
}

// OutlierCount returns the number of values beyond the Tukey fences.
func OutlierCount(vals []float64) int {
	if len(vals) == 0 {
		return 0
	}
	lower, upper := Fences(vals)
	n := 0
	for _, v := range vals {
		if v < lower || v > upper {
			n++
		}
	}
	return n
}

// Skewness computes the Fisher–Pearson sample skewness
// g1 = m3 / m2^(3/2) with moments about the mean. It is undefined (NaN) for
// fewer than 3 values or for a constant slice.
func Skewness(vals []float64) float64 {
	n := float64(len(vals))
	if n < 3 {
		return math.NaN()
	}
	var mean float64
	for _, v := range vals {
		mean += v
	}
	mean /= n

	var m2, m3 float64
	for _, v := range vals {
		d := v - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	if m2 == 0 {
		return math.NaN()
	}
	return m3 / math.Pow(m2, 1.5)
}

// Round3 rounds to 3 decimal digits, half away from zero.
func Round3(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*1000) / 1000
}
