package rules

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/garagon/yacare/internal/frame"
	"github.com/garagon/yacare/internal/scan"
	"github.com/garagon/yacare/internal/stats"
	"github.com/garagon/yacare/internal/types"
)

// Evaluate runs every compiled check against the table and returns the
// findings sorted by severity (descending), column position, then check ID.
// Undefined measures never fire. Workers bounds the per-check scan
// parallelism; <= 0 means NumCPU.
func Evaluate(t *frame.Table, checks []*CompiledCheck, workers int) (*types.CheckResult, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil table", types.ErrInvalidArgument)
	}
	start := time.Now()

	var findings []types.Finding
	for _, check := range checks {
		analyzer := scan.AnalyzerFunc{ID: string(check.Measure), Fn: check.Measure.Compute}
		filter := func(col *frame.Column) bool { return check.Admits(col.Class()) }
		for _, m := range scan.New(filter, analyzer, workers).Scan(t) {
			if math.IsNaN(m.Value) || !check.Op.Apply(m.Value, check.Threshold) {
				continue
			}
			findings = append(findings, types.Finding{
				CheckID:   check.ID,
				CheckName: check.Name,
				Severity:  check.Severity,
				Variable:  m.Column.Name,
				Pos:       m.Column.Pos,
				Class:     m.Column.Class,
				Measure:   string(check.Measure),
				Value:     stats.Round3(m.Value),
				Threshold: check.Threshold,
			})
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Severity != findings[j].Severity {
			return findings[i].Severity > findings[j].Severity
		}
		if findings[i].Pos != findings[j].Pos {
			return findings[i].Pos < findings[j].Pos
		}
		return findings[i].CheckID < findings[j].CheckID
	})

	return &types.CheckResult{
		Findings:       findings,
		ColumnsChecked: t.Len(),
		ChecksLoaded:   len(checks),
		Duration:       time.Since(start),
	}, nil
}
