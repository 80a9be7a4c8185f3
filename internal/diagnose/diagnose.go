// Package diagnose implements the data-quality diagnostics as thin
// configurations of the generic column scanner: class lookup, class-based
// selection, and detection of missing values, outliers, and skewed
// distributions.
package diagnose

import (
	"fmt"
	"math"

	"github.com/garagon/yacare/internal/frame"
	"github.com/garagon/yacare/internal/scan"
	"github.com/garagon/yacare/internal/stats"
	"github.com/garagon/yacare/internal/types"
)

// Kind selects a class set for FindClass.
type Kind string

const (
	// KindNumerical selects integer and numeric columns.
	KindNumerical Kind = "numerical"
	// KindCategorical selects factor and ordered columns.
	KindCategorical Kind = "categorical"
	// KindCategorical2 selects factor, ordered, and character columns.
	KindCategorical2 Kind = "categorical2"
)

// DefaultSkewThreshold is the |skewness| cutoff used by FindSkewness when the
// caller does not supply one. SkewnessValues deliberately applies no cutoff
// by default; the two defaults are distinct.
const DefaultSkewThreshold = 0.5

// Outlier and skewness diagnostics restrict the candidate set to effective
// class numeric, deliberately narrower than KindNumerical.
var numericOnly = scan.ClassIn(types.ClassNumeric)

var (
	naCount = scan.AnalyzerFunc{ID: "na_count", Fn: func(col *frame.Column) float64 {
		return float64(col.NACount())
	}}
	naRate = scan.AnalyzerFunc{ID: "missing_rate", Fn: func(col *frame.Column) float64 {
		return rate(col.NACount(), col.Len())
	}}
	outlierCount = scan.AnalyzerFunc{ID: "outlier_count", Fn: func(col *frame.Column) float64 {
		return float64(stats.OutlierCount(col.NonMissing()))
	}}
	outlierRate = scan.AnalyzerFunc{ID: "outlier_rate", Fn: func(col *frame.Column) float64 {
		return rate(stats.OutlierCount(col.NonMissing()), col.Len())
	}}
	skewness = scan.AnalyzerFunc{ID: "skewness", Fn: func(col *frame.Column) float64 {
		return stats.Skewness(col.NonMissing())
	}}
)

// rate is 100*count/total; NaN when total is zero.
func rate(count, total int) float64 {
	if total == 0 {
		return math.NaN()
	}
	return 100 * float64(count) / float64(total)
}

func validate(t *frame.Table) error {
	if t == nil {
		return fmt.Errorf("%w: nil table", types.ErrInvalidArgument)
	}
	return nil
}

// GetClass returns one entry per column with its effective class, in table
// order. It is always total over all columns.
func GetClass(t *frame.Table) ([]types.VariableClass, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	out := make([]types.VariableClass, t.Len())
	for i, col := range t.Columns() {
		out[i] = types.VariableClass{Variable: col.Name(), Class: col.Class()}
	}
	return out, nil
}

// FindClass returns the columns whose effective class belongs to the set
// selected by kind, in table order. An unrecognized kind is rejected, never
// silently defaulted.
func FindClass(t *frame.Table, kind Kind, workers int) ([]types.ColumnDescriptor, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	var filter scan.Filter
	switch kind {
	case KindNumerical:
		filter = scan.ClassIn(types.ClassInteger, types.ClassNumeric)
	case KindCategorical:
		filter = scan.ClassIn(types.ClassFactor, types.ClassOrdered)
	case KindCategorical2:
		filter = scan.ClassIn(types.ClassFactor, types.ClassOrdered, types.ClassCharacter)
	default:
		return nil, fmt.Errorf("%w: unknown class kind %q", types.ErrInvalidArgument, kind)
	}
	measures := scan.New(filter, naCount, workers).Scan(t)
	return selectAll(measures), nil
}

// FindNA returns the columns containing at least one missing value, in table
// order.
func FindNA(t *frame.Table, workers int) ([]types.ColumnDescriptor, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	measures := scan.New(nil, naCount, workers).Scan(t)
	return selectWhere(measures, func(v float64) bool { return v > 0 }), nil
}

// NARates returns the percentage of missing entries for every column, rounded
// to 3 decimals, in table order. A zero-length column yields NaN.
func NARates(t *frame.Table, workers int) ([]types.Rate, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	return rates(scan.New(nil, naRate, workers).Scan(t)), nil
}

// FindOutliers returns the numeric columns with at least one value beyond the
// Tukey fences, preserving their order in the table. Non-numeric columns
// never appear.
func FindOutliers(t *frame.Table, workers int) ([]types.ColumnDescriptor, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	measures := scan.New(numericOnly, outlierCount, workers).Scan(t)
	return selectWhere(measures, func(v float64) bool { return v > 0 }), nil
}

// OutlierRates returns, per numeric column, the percentage of values beyond
// the Tukey fences relative to the full column length, rounded to 3 decimals.
func OutlierRates(t *frame.Table, workers int) ([]types.Rate, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	return rates(scan.New(numericOnly, outlierRate, workers).Scan(t)), nil
}

// FindSkewness returns the numeric columns whose absolute skewness is at
// least thres. A nil thres falls back to DefaultSkewThreshold. Columns with
// undefined skewness are never selected.
func FindSkewness(t *frame.Table, thres *float64, workers int) ([]types.ColumnDescriptor, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	cut := DefaultSkewThreshold
	if thres != nil {
		cut = *thres
	}
	measures := scan.New(numericOnly, skewness, workers).Scan(t)
	return selectWhere(measures, func(v float64) bool {
		return !math.IsNaN(v) && math.Abs(v) >= cut
	}), nil
}

// SkewnessValues returns, per numeric column, the sample skewness rounded to
// 3 decimals. With a nil thres no filtering is applied and undefined values
// propagate as NaN; with thres set, only entries whose absolute rounded
// skewness is at least thres are kept, and undefined entries are dropped.
func SkewnessValues(t *frame.Table, thres *float64, workers int) ([]types.Rate, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	all := rates(scan.New(numericOnly, skewness, workers).Scan(t))
	if thres == nil {
		return all, nil
	}
	var kept []types.Rate
	for _, r := range all {
		if !math.IsNaN(r.Value) && math.Abs(r.Value) >= *thres {
			kept = append(kept, r)
		}
	}
	return kept, nil
}

func selectAll(measures []scan.Measure) []types.ColumnDescriptor {
	return selectWhere(measures, func(float64) bool { return true })
}

func selectWhere(measures []scan.Measure, keep func(float64) bool) []types.ColumnDescriptor {
	var out []types.ColumnDescriptor
	for _, m := range measures {
		if keep(m.Value) {
			out = append(out, m.Column)
		}
	}
	return out
}

func rates(measures []scan.Measure) []types.Rate {
	out := make([]types.Rate, len(measures))
	for i, m := range measures {
		out[i] = types.Rate{Variable: m.Column.Name, Value: stats.Round3(m.Value)}
	}
	return out
}
