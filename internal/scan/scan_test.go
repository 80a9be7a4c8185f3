package scan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/garagon/yacare/internal/frame"
	"github.com/garagon/yacare/internal/scan"
	"github.com/garagon/yacare/internal/types"
)

func lenAnalyzer() scan.Analyzer {
	return scan.AnalyzerFunc{ID: "len", Fn: func(col *frame.Column) float64 {
		return float64(col.Len())
	}}
}

func testTable(t *testing.T) *frame.Table {
	t.Helper()
	return frame.MustNew(
		frame.Numeric("a", 1, 2, 3),
		frame.Character("b", "x", "y"),
		frame.Integer("c", 7),
		frame.Numeric("d"),
	)
}

func TestScanAllColumnsInOrder(t *testing.T) {
	s := scan.New(nil, lenAnalyzer(), 1)
	measures := s.Scan(testTable(t))

	require.Len(t, measures, 4)
	for i, m := range measures {
		require.Equal(t, i+1, m.Column.Pos)
	}
	require.Equal(t, []float64{3, 2, 1, 0}, values(measures))
}

func TestScanFilterKeepsOriginalPositions(t *testing.T) {
	s := scan.New(scan.ClassIn(types.ClassNumeric), lenAnalyzer(), 1)
	measures := s.Scan(testTable(t))

	require.Len(t, measures, 2)
	require.Equal(t, "a", measures[0].Column.Name)
	require.Equal(t, 1, measures[0].Column.Pos)
	require.Equal(t, "d", measures[1].Column.Name)
	require.Equal(t, 4, measures[1].Column.Pos)
}

func TestScanParallelMatchesSequential(t *testing.T) {
	cols := make([]*frame.Column, 50)
	for i := range cols {
		cols[i] = frame.Numeric(string(rune('a'+i%26))+string(rune('0'+i/26)), float64(i), float64(i*2))
	}
	tbl := frame.MustNew(cols...)

	seq := scan.New(nil, lenAnalyzer(), 1).Scan(tbl)
	par := scan.New(nil, lenAnalyzer(), 8).Scan(tbl)
	require.Equal(t, seq, par)
}

func TestScanEmptyCandidateSet(t *testing.T) {
	s := scan.New(scan.ClassIn(types.ClassOrdered), lenAnalyzer(), 0)
	require.Nil(t, s.Scan(testTable(t)))
}

func TestClassIn(t *testing.T) {
	f := scan.ClassIn(types.ClassInteger, types.ClassNumeric)
	require.True(t, f(frame.Numeric("n", 1)))
	require.True(t, f(frame.Integer("i", 1)))
	require.False(t, f(frame.Character("c", "x")))
}

func values(measures []scan.Measure) []float64 {
	out := make([]float64, len(measures))
	for i, m := range measures {
		out[i] = m.Value
	}
	return out
}
