// Package yacare provides data-quality diagnostics for tabular data: column
// class lookup and selection, and detection of missing values, box-plot
// outliers, and skewed distributions.
//
// This is the library entry point. For the CLI tool, see cmd/yacare/.
package yacare

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/garagon/yacare/internal/diagnose"
	"github.com/garagon/yacare/internal/frame"
	"github.com/garagon/yacare/internal/rules"
	"github.com/garagon/yacare/internal/rules/builtin"
	"github.com/garagon/yacare/internal/types"
)

// Re-export core types from internal packages so consumers don't need to
// import them directly.
type (
	Table            = frame.Table
	Column           = frame.Column
	Class            = types.Class
	Severity         = types.Severity
	ColumnDescriptor = types.ColumnDescriptor
	VariableClass    = types.VariableClass
	Rate             = types.Rate
	Finding          = types.Finding
	CheckResult      = types.CheckResult
	Kind             = diagnose.Kind
)

const (
	ClassNumeric   = types.ClassNumeric
	ClassInteger   = types.ClassInteger
	ClassFactor    = types.ClassFactor
	ClassOrdered   = types.ClassOrdered
	ClassCharacter = types.ClassCharacter
	ClassOther     = types.ClassOther

	SeverityInfo     = types.SeverityInfo
	SeverityLow      = types.SeverityLow
	SeverityMedium   = types.SeverityMedium
	SeverityHigh     = types.SeverityHigh
	SeverityCritical = types.SeverityCritical

	KindNumerical    = diagnose.KindNumerical
	KindCategorical  = diagnose.KindCategorical
	KindCategorical2 = diagnose.KindCategorical2
)

// ErrInvalidArgument is returned for malformed input; match with errors.Is.
var ErrInvalidArgument = types.ErrInvalidArgument

// Column constructors and table assembly, re-exported from internal/frame.
var (
	NewTable  = frame.New
	Numeric   = frame.Numeric
	Integer   = frame.Integer
	Factor    = frame.Factor
	Ordered   = frame.Ordered
	Character = frame.Character
)

// ReadCSV reads delimited data with a header row into a table, inferring each
// column's effective class from its cells.
func ReadCSV(r io.Reader, opts ...Option) (*Table, error) {
	cfg := applyOpts(opts)
	return frame.Read(r, cfg.readOptions())
}

// ReadCSVFile reads a delimited file into a table. A tab delimiter is
// inferred for .tsv files unless WithDelimiter overrides it.
func ReadCSVFile(path string, opts ...Option) (*Table, error) {
	cfg := applyOpts(opts)
	return frame.ReadFile(path, cfg.readOptions())
}

// GetClass returns one entry per column with its effective class, in table
// order.
func GetClass(t *Table) ([]VariableClass, error) {
	return diagnose.GetClass(t)
}

// FindClass returns the columns whose effective class belongs to the set
// selected by kind: KindNumerical (integer, numeric), KindCategorical
// (factor, ordered), or KindCategorical2 (factor, ordered, character).
func FindClass(t *Table, kind Kind, opts ...Option) ([]ColumnDescriptor, error) {
	cfg := applyOpts(opts)
	return diagnose.FindClass(t, kind, cfg.workers)
}

// FindNA returns the columns containing at least one missing value, in table
// order.
func FindNA(t *Table, opts ...Option) ([]ColumnDescriptor, error) {
	cfg := applyOpts(opts)
	return diagnose.FindNA(t, cfg.workers)
}

// NARates returns the percentage of missing entries for every column,
// rounded to 3 decimals, in table order.
func NARates(t *Table, opts ...Option) ([]Rate, error) {
	cfg := applyOpts(opts)
	return diagnose.NARates(t, cfg.workers)
}

// FindOutliers returns the numeric columns containing at least one value
// beyond the Tukey box-plot fences. Integer and categorical columns are
// outside the candidate set.
func FindOutliers(t *Table, opts ...Option) ([]ColumnDescriptor, error) {
	cfg := applyOpts(opts)
	return diagnose.FindOutliers(t, cfg.workers)
}

// OutlierRates returns, per numeric column, the percentage of values beyond
// the Tukey fences, rounded to 3 decimals.
func OutlierRates(t *Table, opts ...Option) ([]Rate, error) {
	cfg := applyOpts(opts)
	return diagnose.OutlierRates(t, cfg.workers)
}

// FindSkewness returns the numeric columns whose absolute sample skewness
// meets the threshold (WithThreshold; default 0.5). Columns with undefined
// skewness are never selected.
func FindSkewness(t *Table, opts ...Option) ([]ColumnDescriptor, error) {
	cfg := applyOpts(opts)
	return diagnose.FindSkewness(t, cfg.threshold, cfg.workers)
}

// SkewnessValues returns, per numeric column, the sample skewness rounded to
// 3 decimals. Without WithThreshold no filtering is applied and undefined
// values propagate as NaN; with it, only entries whose absolute skewness
// meets the threshold are kept and undefined entries are dropped.
func SkewnessValues(t *Table, opts ...Option) ([]Rate, error) {
	cfg := applyOpts(opts)
	return diagnose.SkewnessValues(t, cfg.threshold, cfg.workers)
}

// CheckInfo provides summary metadata about a quality check.
type CheckInfo struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Severity  string  `json:"severity"`
	Measure   string  `json:"measure"`
	Threshold float64 `json:"threshold"`
}

// Check evaluates the built-in (and optionally custom) quality checks
// against the table.
func Check(t *Table, opts ...Option) (*CheckResult, error) {
	cfg := applyOpts(opts)
	compiled, err := loadAndCompile(cfg)
	if err != nil {
		return nil, err
	}
	result, err := rules.Evaluate(t, compiled, cfg.workers)
	if err != nil {
		return nil, err
	}
	if cfg.minSeverity > SeverityInfo {
		var filtered []Finding
		for _, f := range result.Findings {
			if f.Severity >= cfg.minSeverity {
				filtered = append(filtered, f)
			}
		}
		result.Findings = filtered
	}
	return result, nil
}

// ListChecks returns all available quality checks.
func ListChecks(opts ...Option) []CheckInfo {
	cfg := applyOpts(opts)
	compiled, _ := loadAndCompile(cfg)

	sort.Slice(compiled, func(i, j int) bool {
		return compiled[i].ID < compiled[j].ID
	})

	infos := make([]CheckInfo, len(compiled))
	for i, c := range compiled {
		infos[i] = CheckInfo{
			ID:        c.ID,
			Name:      c.Name,
			Severity:  c.Severity.String(),
			Measure:   string(c.Measure),
			Threshold: c.Threshold,
		}
	}
	return infos
}

// --- internal helpers ---

// loadAndCompile loads built-in (and optionally custom) checks, compiles
// them, and applies overrides/filters. Used by all public functions.
func loadAndCompile(cfg *scanConfig) ([]*rules.CompiledCheck, error) {
	rawChecks, err := rules.LoadFromFS(builtin.FS())
	if err != nil {
		return nil, fmt.Errorf("loading built-in checks: %w", err)
	}

	if cfg.customChecksDir != "" {
		custom, err := rules.LoadFromDir(cfg.customChecksDir)
		if err != nil {
			return nil, fmt.Errorf("loading custom checks from %s: %w", cfg.customChecksDir, err)
		}
		rawChecks = append(rawChecks, custom...)
	}

	compiled, compileErrs := rules.CompileAll(rawChecks)
	for _, e := range compileErrs {
		fmt.Fprintf(os.Stderr, "yacare: warning: %v\n", e)
	}

	if len(cfg.checkOverrides) > 0 {
		overrides := make(map[string]rules.CheckOverride, len(cfg.checkOverrides))
		for id, ovr := range cfg.checkOverrides {
			overrides[id] = rules.CheckOverride{Severity: ovr.Severity, Disabled: ovr.Disabled}
		}
		var overrideErrs []error
		compiled, overrideErrs = rules.ApplyOverrides(compiled, overrides)
		for _, e := range overrideErrs {
			fmt.Fprintf(os.Stderr, "yacare: warning: %v\n", e)
		}
	}

	if len(cfg.disabledChecks) > 0 {
		disabled := make(map[string]bool, len(cfg.disabledChecks))
		for _, id := range cfg.disabledChecks {
			disabled[strings.TrimSpace(id)] = true
		}
		compiled = rules.FilterByIDs(compiled, disabled)
	}

	return compiled, nil
}
