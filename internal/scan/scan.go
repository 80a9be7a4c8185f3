// Package scan implements the generic column scanner shared by every
// diagnostic: a column filter picks the candidate set, an Analyzer computes a
// per-column measure, and the caller shapes the ordered measures into
// selections or rate tables. All five diagnostics are thin configurations of
// this one routine, so their behavior cannot drift apart.
package scan

import (
	"runtime"
	"sync"

	"github.com/garagon/yacare/internal/frame"
	"github.com/garagon/yacare/internal/types"
)

// Analyzer computes a scalar measure for one column.
type Analyzer interface {
	Name() string
	Analyze(col *frame.Column) float64
}

// AnalyzerFunc adapts a plain function to the Analyzer interface.
type AnalyzerFunc struct {
	ID string
	Fn func(col *frame.Column) float64
}

func (a AnalyzerFunc) Name() string                      { return a.ID }
func (a AnalyzerFunc) Analyze(col *frame.Column) float64 { return a.Fn(col) }

// Filter reports whether a column belongs to the candidate set.
type Filter func(col *frame.Column) bool

// All admits every column.
func All(*frame.Column) bool { return true }

// ClassIn admits columns whose effective class is in the given set.
func ClassIn(classes ...types.Class) Filter {
	return func(col *frame.Column) bool {
		for _, c := range classes {
			if col.Class() == c {
				return true
			}
		}
		return false
	}
}

// Measure is one scanned column paired with its analyzer value. Measures are
// always emitted in the candidate set's table order.
type Measure struct {
	Column types.ColumnDescriptor
	Value  float64
}

// Scanner runs an analyzer over a table's candidate columns.
type Scanner struct {
	filter   Filter
	analyzer Analyzer
	workers  int
}

// New creates a scanner. A nil filter admits every column. If workers <= 0,
// it defaults to runtime.NumCPU().
func New(filter Filter, analyzer Analyzer, workers int) *Scanner {
	if filter == nil {
		filter = All
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scanner{filter: filter, analyzer: analyzer, workers: workers}
}

type job struct {
	idx int
	pos int
	col *frame.Column
}

// Scan analyzes the candidate columns and returns their measures in table
// order. Results are written into an index-addressed slice so the observable
// ordering is identical to sequential execution regardless of worker count.
func (s *Scanner) Scan(t *frame.Table) []Measure {
	var jobs []job
	for i, col := range t.Columns() {
		if s.filter(col) {
			jobs = append(jobs, job{idx: len(jobs), pos: i + 1, col: col})
		}
	}
	if len(jobs) == 0 {
		return nil
	}

	measures := make([]Measure, len(jobs))

	workers := min(s.workers, len(jobs))
	if workers == 1 {
		for _, j := range jobs {
			measures[j.idx] = Measure{Column: j.col.Descriptor(j.pos), Value: s.analyzer.Analyze(j.col)}
		}
		return measures
	}

	jobCh := make(chan job, len(jobs))
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				measures[j.idx] = Measure{Column: j.col.Descriptor(j.pos), Value: s.analyzer.Analyze(j.col)}
			}
		}()
	}
	wg.Wait()

	return measures
}
