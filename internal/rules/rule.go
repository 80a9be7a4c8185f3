// Package rules loads and evaluates YAML-defined column quality checks.
// A check binds a diagnostic measure (missing rate, outlier rate, absolute
// skewness, distinct count, cardinality ratio) to a comparator, a threshold,
// a severity, and an optional class restriction.
package rules

import (
	"math"

	"github.com/garagon/yacare/internal/frame"
	"github.com/garagon/yacare/internal/stats"
	"github.com/garagon/yacare/internal/types"
)

// Measure identifies the per-column statistic a check evaluates.
type Measure string

const (
	// MeasureMissingRate is the percentage of missing entries (0-100).
	MeasureMissingRate Measure = "missing_rate"
	// MeasureOutlierRate is the percentage of Tukey-fence outliers relative
	// to column length (0-100). Numeric columns only.
	MeasureOutlierRate Measure = "outlier_rate"
	// MeasureAbsSkewness is |sample skewness|. Numeric columns only;
	// undefined for constant or too-short columns.
	MeasureAbsSkewness Measure = "abs_skewness"
	// MeasureDistinct is the number of distinct non-missing values.
	MeasureDistinct Measure = "distinct"
	// MeasureCardinalityRatio is 100*distinct/length.
	MeasureCardinalityRatio Measure = "cardinality_ratio"
)

// NumericOnly reports whether the measure is defined for numeric columns only.
func (m Measure) NumericOnly() bool {
	return m == MeasureOutlierRate || m == MeasureAbsSkewness
}

// Compute evaluates the measure for one column. NaN means undefined; a check
// never fires on an undefined measure.
func (m Measure) Compute(col *frame.Column) float64 {
	switch m {
	case MeasureMissingRate:
		return pct(col.NACount(), col.Len())
	case MeasureOutlierRate:
		return pct(stats.OutlierCount(col.NonMissing()), col.Len())
	case MeasureAbsSkewness:
		return math.Abs(stats.Skewness(col.NonMissing()))
	case MeasureDistinct:
		return float64(col.Distinct())
	case MeasureCardinalityRatio:
		return pct(col.Distinct(), col.Len())
	default:
		return math.NaN()
	}
}

func pct(count, total int) float64 {
	if total == 0 {
		return math.NaN()
	}
	return 100 * float64(count) / float64(total)
}

// Op is a threshold comparator.
type Op string

const (
	OpGT Op = "gt"
	OpGE Op = "ge"
	OpLT Op = "lt"
	OpLE Op = "le"
	OpEQ Op = "eq"
)

// Apply compares a measure value against the threshold.
func (o Op) Apply(value, threshold float64) bool {
	switch o {
	case OpGT:
		return value > threshold
	case OpGE:
		return value >= threshold
	case OpLT:
		return value < threshold
	case OpLE:
		return value <= threshold
	case OpEQ:
		return value == threshold
	default:
		return false
	}
}

// RawCheck is the YAML representation of a quality check.
type RawCheck struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Severity    string   `yaml:"severity"`
	Measure     string   `yaml:"measure"`
	Op          string   `yaml:"op"`
	Threshold   float64  `yaml:"threshold"`
	Classes     []string `yaml:"classes,omitempty"`
}

// CompiledCheck is a check compiled and ready for evaluation.
type CompiledCheck struct {
	ID          string
	Name        string
	Description string
	Severity    types.Severity
	Measure     Measure
	Op          Op
	Threshold   float64
	Classes     []types.Class // empty means no class restriction
}

// Admits reports whether the check applies to a column of the given class.
func (c *CompiledCheck) Admits(class types.Class) bool {
	if c.Measure.NumericOnly() && class != types.ClassNumeric {
		return false
	}
	if len(c.Classes) == 0 {
		return true
	}
	for _, want := range c.Classes {
		if class == want {
			return true
		}
	}
	return false
}
