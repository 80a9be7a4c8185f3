package diagnose_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/garagon/yacare/internal/diagnose"
	"github.com/garagon/yacare/internal/frame"
	"github.com/garagon/yacare/internal/types"
)

// mixed has one column of every class, in a fixed order.
func mixed(t *testing.T) *frame.Table {
	t.Helper()
	return frame.MustNew(
		frame.Numeric("num", 1, 2, 3, 4, 100),
		frame.Integer("int", 1, 2, 3),
		frame.Factor("fac", "a", "b", "a"),
		frame.Ordered("ord", "lo", "hi"),
		frame.Character("chr", "x", "y"),
	)
}

func TestGetClassTotalAndOrdered(t *testing.T) {
	got, err := diagnose.GetClass(mixed(t))
	require.NoError(t, err)
	require.Equal(t, []types.VariableClass{
		{Variable: "num", Class: types.ClassNumeric},
		{Variable: "int", Class: types.ClassInteger},
		{Variable: "fac", Class: types.ClassFactor},
		{Variable: "ord", Class: types.ClassOrdered},
		{Variable: "chr", Class: types.ClassCharacter},
	}, got)
}

func TestGetClassNilTable(t *testing.T) {
	_, err := diagnose.GetClass(nil)
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestFindClass(t *testing.T) {
	tbl := mixed(t)

	num, err := diagnose.FindClass(tbl, diagnose.KindNumerical, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, positions(num))

	cat, err := diagnose.FindClass(tbl, diagnose.KindCategorical, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"fac", "ord"}, names(cat))

	cat2, err := diagnose.FindClass(tbl, diagnose.KindCategorical2, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"fac", "ord", "chr"}, names(cat2))

	// categorical is a subset of categorical2.
	require.Subset(t, names(cat2), names(cat))
}

func TestFindClassUnknownKind(t *testing.T) {
	_, err := diagnose.FindClass(mixed(t), diagnose.Kind("bogus"), 1)
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestFindNAScenario(t *testing.T) {
	// T: A=[1,2,3,NA,5] numeric, B=["x","y","z","w","v"] character.
	tbl := frame.MustNew(
		frame.Numeric("A", 1, 2, 3, math.NaN(), 5),
		frame.Character("B", "x", "y", "z", "w", "v"),
	)

	sel, err := diagnose.FindNA(tbl, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, positions(sel))
	require.Equal(t, []string{"A"}, names(sel))

	rates, err := diagnose.NARates(tbl, 1)
	require.NoError(t, err)
	require.Equal(t, []types.Rate{
		{Variable: "A", Value: 20},
		{Variable: "B", Value: 0},
	}, rates)
}

func TestNARatesBounds(t *testing.T) {
	tbl := frame.MustNew(
		frame.Numeric("clean", 1, 2, 3),
		frame.Character("gone", "a", "b").WithNA(0, 1),
		frame.Numeric("third", 1, 2, math.NaN()),
	)
	rates, err := diagnose.NARates(tbl, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, rates[0].Value)
	require.Equal(t, 100.0, rates[1].Value)
	require.Equal(t, 33.333, rates[2].Value)
	for _, r := range rates {
		require.GreaterOrEqual(t, r.Value, 0.0)
		require.LessOrEqual(t, r.Value, 100.0)
	}
}

func TestNARatesZeroLengthColumn(t *testing.T) {
	tbl := frame.MustNew(frame.Numeric("empty"))
	rates, err := diagnose.NARates(tbl, 1)
	require.NoError(t, err)
	require.Len(t, rates, 1)
	require.True(t, math.IsNaN(rates[0].Value))
}

func TestFindOutliersScenario(t *testing.T) {
	// T: C=[1,1,1,1,100] numeric with one extreme outlier.
	tbl := frame.MustNew(
		frame.Character("label", "a", "b", "c", "d", "e"),
		frame.Numeric("C", 1, 1, 1, 1, 100),
	)

	sel, err := diagnose.FindOutliers(tbl, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"C"}, names(sel))
	require.Equal(t, []int{2}, positions(sel))

	rates, err := diagnose.OutlierRates(tbl, 1)
	require.NoError(t, err)
	require.Equal(t, []types.Rate{{Variable: "C", Value: 20}}, rates)
}

func TestOutliersExcludeIntegerColumns(t *testing.T) {
	// Integer columns are outside the candidate set even with extreme values.
	tbl := frame.MustNew(
		frame.Integer("int", 1, 1, 1, 1, 1000),
		frame.Numeric("num", 1, 2, 3),
	)
	sel, err := diagnose.FindOutliers(tbl, 1)
	require.NoError(t, err)
	require.Empty(t, sel)

	rates, err := diagnose.OutlierRates(tbl, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"num"}, rateNames(rates))
}

func TestOutliersIgnoreMissingValues(t *testing.T) {
	tbl := frame.MustNew(frame.Numeric("x", 1, 1, 1, 1, 100, math.NaN()))
	rates, err := diagnose.OutlierRates(tbl, 1)
	require.NoError(t, err)
	// One outlier over a column length of 6 (missing entries count toward length).
	require.Equal(t, 16.667, rates[0].Value)
}

func TestFindSkewnessDefaultThreshold(t *testing.T) {
	tbl := frame.MustNew(
		frame.Numeric("sym", 1, 2, 3, 4, 5),
		frame.Numeric("skewed", 1, 1, 1, 1, 100),
	)
	sel, err := diagnose.FindSkewness(tbl, nil, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"skewed"}, names(sel))
}

func TestFindSkewnessThresholdMonotonic(t *testing.T) {
	tbl := frame.MustNew(
		frame.Numeric("a", 1, 2, 3, 4, 5),
		frame.Numeric("b", 1, 1, 2, 3, 10),
		frame.Numeric("c", 1, 1, 1, 1, 100),
	)
	lo, hi := 0.1, 1.2
	selLo, err := diagnose.FindSkewness(tbl, &lo, 1)
	require.NoError(t, err)
	selHi, err := diagnose.FindSkewness(tbl, &hi, 1)
	require.NoError(t, err)
	require.Subset(t, names(selLo), names(selHi))
	require.LessOrEqual(t, len(selHi), len(selLo))
}

func TestFindSkewnessSkipsUndefined(t *testing.T) {
	zero := 0.0
	tbl := frame.MustNew(frame.Numeric("const", 5, 5, 5, 5))
	sel, err := diagnose.FindSkewness(tbl, &zero, 1)
	require.NoError(t, err)
	require.Empty(t, sel)
}

func TestSkewnessValuesUnfiltered(t *testing.T) {
	tbl := frame.MustNew(
		frame.Numeric("sym", 1, 2, 3, 4, 5),
		frame.Numeric("const", 7, 7, 7),
		frame.Integer("int", 1, 2, 100),
	)
	vals, err := diagnose.SkewnessValues(tbl, nil, 1)
	require.NoError(t, err)
	// Unfiltered: every numeric column reported, NaN propagated, integer excluded.
	require.Equal(t, []string{"sym", "const"}, rateNames(vals))
	require.Equal(t, 0.0, vals[0].Value)
	require.True(t, math.IsNaN(vals[1].Value))
}

func TestSkewnessValuesThresholdDropsUndefined(t *testing.T) {
	zero := 0.5
	tbl := frame.MustNew(
		frame.Numeric("const", 7, 7, 7),
		frame.Numeric("skewed", 1, 1, 1, 1, 100),
	)
	vals, err := diagnose.SkewnessValues(tbl, &zero, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"skewed"}, rateNames(vals))
	require.InDelta(t, 1.5, vals[0].Value, 0.001)
}

func TestIdempotence(t *testing.T) {
	tbl := mixed(t)
	first, err := diagnose.NARates(tbl, 1)
	require.NoError(t, err)
	second, err := diagnose.NARates(tbl, 1)
	require.NoError(t, err)
	require.Equal(t, first, second)

	selA, err := diagnose.FindOutliers(tbl, 1)
	require.NoError(t, err)
	selB, err := diagnose.FindOutliers(tbl, 1)
	require.NoError(t, err)
	require.Equal(t, selA, selB)
}

func positions(descs []types.ColumnDescriptor) []int {
	out := make([]int, len(descs))
	for i, d := range descs {
		out[i] = d.Pos
	}
	return out
}

func names(descs []types.ColumnDescriptor) []string {
	out := make([]string, len(descs))
	for i, d := range descs {
		out[i] = d.Name
	}
	return out
}

func rateNames(rates []types.Rate) []string {
	out := make([]string, len(rates))
	for i, r := range rates {
		out[i] = r.Variable
	}
	return out
}
