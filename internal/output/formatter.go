// Package output formats diagnosis reports and quality-check results for
// terminal (ANSI), JSON, Markdown, and HTML output.
package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/garagon/yacare/internal/types"
)

// ToolVersion is stamped into report footers; set by the CLI.
var ToolVersion = "dev"

// Formatter is the interface for outputting diagnosis and check results.
type Formatter interface {
	FormatDiagnosis(w io.Writer, d *Diagnosis) error
	FormatChecks(w io.Writer, result *types.CheckResult) error
}

// Diagnosis is the per-column report the CLI composes from the diagnostic
// primitives.
type Diagnosis struct {
	Target   string        `json:"-"`
	Rows     []Row         `json:"columns"`
	Duration time.Duration `json:"-"`
}

// Row is one column of the diagnosis. MissingRate is NaN for zero-length
// columns; OutlierRate and Skewness are NaN for non-numeric columns and for
// columns where the statistic is undefined.
type Row struct {
	Variable    string      `json:"variable"`
	Pos         int         `json:"pos"`
	Class       types.Class `json:"class"`
	MissingRate float64     `json:"missing_rate"`
	OutlierRate float64     `json:"outlier_rate"`
	Skewness    float64     `json:"skewness"`
}

// MarshalJSON serializes NaN statistics as null.
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Variable    string      `json:"variable"`
		Pos         int         `json:"pos"`
		Class       types.Class `json:"class"`
		MissingRate interface{} `json:"missing_rate"`
		OutlierRate interface{} `json:"outlier_rate"`
		Skewness    interface{} `json:"skewness"`
	}{
		Variable:    r.Variable,
		Pos:         r.Pos,
		Class:       r.Class,
		MissingRate: nanToNil(r.MissingRate),
		OutlierRate: nanToNil(r.OutlierRate),
		Skewness:    nanToNil(r.Skewness),
	})
}

// MarshalJSON emits the row list plus run metadata.
func (d Diagnosis) MarshalJSON() ([]byte, error) {
	type alias Diagnosis
	return json.Marshal(struct {
		alias
		DurationMS int64 `json:"duration_ms"`
	}{
		alias:      alias(d),
		DurationMS: d.Duration.Milliseconds(),
	})
}

func nanToNil(v float64) interface{} {
	if v != v {
		return nil
	}
	return v
}
