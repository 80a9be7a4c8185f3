package commands

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/garagon/yacare/internal/diagnose"
	"github.com/garagon/yacare/internal/output"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [file]",
	Short: "Report class, missing rate, outlier rate, and skewness per column",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiagnose,
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	target := args[0]

	loadFileConfig(cmd, target)
	applyCIDefaults()

	tbl, err := readTable(target)
	if err != nil {
		return err
	}

	start := time.Now()

	classes, err := diagnose.GetClass(tbl)
	if err != nil {
		return err
	}
	missing, err := diagnose.NARates(tbl, flagWorkers)
	if err != nil {
		return err
	}
	outliers, err := diagnose.OutlierRates(tbl, flagWorkers)
	if err != nil {
		return err
	}
	skewness, err := diagnose.SkewnessValues(tbl, nil, flagWorkers)
	if err != nil {
		return err
	}

	// Outlier rate and skewness exist only for numeric columns; everything
	// else reports NaN.
	outlierByVar := make(map[string]float64, len(outliers))
	for _, r := range outliers {
		outlierByVar[r.Variable] = r.Value
	}
	skewByVar := make(map[string]float64, len(skewness))
	for _, r := range skewness {
		skewByVar[r.Variable] = r.Value
	}

	rows := make([]output.Row, len(classes))
	for i, vc := range classes {
		rows[i] = output.Row{
			Variable:    vc.Variable,
			Pos:         i + 1,
			Class:       vc.Class,
			MissingRate: missing[i].Value,
			OutlierRate: math.NaN(),
			Skewness:    math.NaN(),
		}
		if v, ok := outlierByVar[vc.Variable]; ok {
			rows[i].OutlierRate = v
		}
		if v, ok := skewByVar[vc.Variable]; ok {
			rows[i].Skewness = v
		}
	}

	d := &output.Diagnosis{
		Target:   target,
		Rows:     rows,
		Duration: time.Since(start),
	}

	return writeDiagnosis(d)
}

func writeDiagnosis(d *output.Diagnosis) error {
	output.ToolVersion = Version

	w, closeFn, err := outputWriter()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := newFormatter().FormatDiagnosis(w, d); err != nil {
		return fmt.Errorf("formatting diagnosis: %w", err)
	}
	return nil
}
