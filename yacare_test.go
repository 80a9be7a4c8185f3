package yacare_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/garagon/yacare"
)

func sampleTable(t *testing.T) *yacare.Table {
	t.Helper()
	tbl, err := yacare.NewTable(
		yacare.Numeric("A", 1, 2, 3, math.NaN(), 5),
		yacare.Character("B", "x", "y", "z", "w", "v"),
		yacare.Numeric("C", 1, 1, 1, 1, 100),
		yacare.Integer("D", 1, 2, 3, 4, 5),
	)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestGetClass(t *testing.T) {
	classes, err := yacare.GetClass(sampleTable(t))
	if err != nil {
		t.Fatalf("GetClass failed: %v", err)
	}
	if len(classes) != 4 {
		t.Fatalf("expected 4 class rows, got %d", len(classes))
	}
	if classes[0].Variable != "A" || classes[0].Class != yacare.ClassNumeric {
		t.Errorf("unexpected first row: %+v", classes[0])
	}
	if classes[3].Class != yacare.ClassInteger {
		t.Errorf("D should be integer, got %s", classes[3].Class)
	}
}

func TestFindClassRejectsUnknownKind(t *testing.T) {
	_, err := yacare.FindClass(sampleTable(t), yacare.Kind("bogus"))
	if !errors.Is(err, yacare.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestFindNA(t *testing.T) {
	sel, err := yacare.FindNA(sampleTable(t))
	if err != nil {
		t.Fatalf("FindNA failed: %v", err)
	}
	if len(sel) != 1 || sel[0].Name != "A" || sel[0].Pos != 1 {
		t.Errorf("expected only column A at position 1, got %+v", sel)
	}

	rates, err := yacare.NARates(sampleTable(t))
	if err != nil {
		t.Fatalf("NARates failed: %v", err)
	}
	if len(rates) != 4 {
		t.Fatalf("expected a rate for every column, got %d", len(rates))
	}
	if rates[0].Value != 20 {
		t.Errorf("A missing rate = %v, want 20", rates[0].Value)
	}
	if rates[1].Value != 0 {
		t.Errorf("B missing rate = %v, want 0", rates[1].Value)
	}
}

func TestFindOutliers(t *testing.T) {
	sel, err := yacare.FindOutliers(sampleTable(t))
	if err != nil {
		t.Fatalf("FindOutliers failed: %v", err)
	}
	if len(sel) != 1 || sel[0].Name != "C" {
		t.Errorf("expected only column C, got %+v", sel)
	}

	rates, err := yacare.OutlierRates(sampleTable(t))
	if err != nil {
		t.Fatalf("OutlierRates failed: %v", err)
	}
	// Numeric columns only: A and C. Integer D is excluded.
	if len(rates) != 2 {
		t.Fatalf("expected 2 numeric columns, got %d", len(rates))
	}
	if rates[1].Variable != "C" || rates[1].Value != 20 {
		t.Errorf("C outlier rate = %+v, want 20", rates[1])
	}
}

func TestFindSkewness(t *testing.T) {
	sel, err := yacare.FindSkewness(sampleTable(t))
	if err != nil {
		t.Fatalf("FindSkewness failed: %v", err)
	}
	if len(sel) != 1 || sel[0].Name != "C" {
		t.Errorf("expected only column C with default threshold, got %+v", sel)
	}

	// A high threshold excludes everything.
	sel, err = yacare.FindSkewness(sampleTable(t), yacare.WithThreshold(10))
	if err != nil {
		t.Fatalf("FindSkewness failed: %v", err)
	}
	if len(sel) != 0 {
		t.Errorf("expected no columns at threshold 10, got %+v", sel)
	}
}

func TestSkewnessValues(t *testing.T) {
	vals, err := yacare.SkewnessValues(sampleTable(t))
	if err != nil {
		t.Fatalf("SkewnessValues failed: %v", err)
	}
	// Unfiltered: both numeric columns reported.
	if len(vals) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(vals))
	}
	if vals[1].Variable != "C" || vals[1].Value != 1.5 {
		t.Errorf("C skewness = %+v, want 1.5", vals[1])
	}
}

func TestReadCSV(t *testing.T) {
	data := "id,score,label\n1,0.5,a\n2,NA,b\n3,1.5,c\n"
	tbl, err := yacare.ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	classes, err := yacare.GetClass(tbl)
	if err != nil {
		t.Fatal(err)
	}
	want := []yacare.Class{yacare.ClassInteger, yacare.ClassNumeric, yacare.ClassCharacter}
	for i, vc := range classes {
		if vc.Class != want[i] {
			t.Errorf("column %s class = %s, want %s", vc.Variable, vc.Class, want[i])
		}
	}

	sel, err := yacare.FindNA(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if len(sel) != 1 || sel[0].Name != "score" {
		t.Errorf("expected score to contain NA, got %+v", sel)
	}
}

func TestCheck(t *testing.T) {
	tbl, err := yacare.NewTable(
		yacare.Numeric("gaps", 1, math.NaN(), math.NaN(), math.NaN()),
		yacare.Numeric("ok", 1, 2, 3, 4),
	)
	if err != nil {
		t.Fatal(err)
	}

	result, err := yacare.Check(tbl)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if result.ChecksLoaded == 0 {
		t.Error("ChecksLoaded = 0, want > 0")
	}
	found := false
	for _, f := range result.Findings {
		if f.CheckID == "NA_RATE_HIGH" && f.Variable == "gaps" {
			found = true
		}
	}
	if !found {
		t.Error("expected NA_RATE_HIGH finding for gaps")
	}
}

func TestCheckWithMinSeverity(t *testing.T) {
	tbl, err := yacare.NewTable(
		yacare.Numeric("gaps", 1, math.NaN(), math.NaN(), math.NaN()),
	)
	if err != nil {
		t.Fatal(err)
	}

	result, err := yacare.Check(tbl, yacare.WithMinSeverity(yacare.SeverityCritical))
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	for _, f := range result.Findings {
		if f.Severity < yacare.SeverityCritical {
			t.Errorf("finding %s has severity %s, want >= CRITICAL", f.CheckID, f.Severity)
		}
	}
}

func TestCheckWithDisabledChecks(t *testing.T) {
	tbl, err := yacare.NewTable(
		yacare.Numeric("gaps", 1, math.NaN(), math.NaN(), math.NaN()),
	)
	if err != nil {
		t.Fatal(err)
	}

	all, err := yacare.Check(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if len(all.Findings) == 0 {
		t.Skip("no findings to disable")
	}
	checkToDisable := all.Findings[0].CheckID

	filtered, err := yacare.Check(tbl, yacare.WithDisabledChecks(checkToDisable))
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range filtered.Findings {
		if f.CheckID == checkToDisable {
			t.Errorf("check %s should have been disabled", checkToDisable)
		}
	}
}

func TestListChecks(t *testing.T) {
	checks := yacare.ListChecks()
	if len(checks) == 0 {
		t.Fatal("expected built-in checks, got 0")
	}
	for _, c := range checks {
		if c.ID == "" || c.Name == "" || c.Severity == "" || c.Measure == "" {
			t.Errorf("check missing fields: %+v", c)
		}
	}
}
