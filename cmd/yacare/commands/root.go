package commands

import (
	"github.com/spf13/cobra"
)

var (
	flagSeverity      string
	flagFormat        string
	flagOutput        string
	flagWorkers       int
	flagChecks        string
	flagNoColor       bool
	flagDisableChecks []string
	flagDelimiter     string
	flagNAStrings     []string
	flagFactors       []string
)

var rootCmd = &cobra.Command{
	Use:   "yacare",
	Short: "Data-quality diagnostics for tabular data",
	Long:  `Yacare diagnoses tabular data files: it classifies columns, locates missing values, box-plot outliers, and skewed distributions, and evaluates quality checks suitable for CI gating.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSeverity, "severity", "info", "Minimum severity to report (critical, high, medium, low, info)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "terminal", "Output format (terminal, json, markdown, html)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Number of worker goroutines (default: NumCPU)")
	rootCmd.PersistentFlags().StringVar(&flagChecks, "checks", "", "Additional quality-check directory")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringSliceVar(&flagDisableChecks, "disable-check", nil, "Check IDs to disable (comma-separated, repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "", "Field delimiter (default: ',' or '\\t' for .tsv)")
	rootCmd.PersistentFlags().StringSliceVar(&flagNAStrings, "na", nil, `Cell values treated as missing (default: "",NA,NaN,null)`)
	rootCmd.PersistentFlags().StringSliceVar(&flagFactors, "factor", nil, "Column names to ingest as factor")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
