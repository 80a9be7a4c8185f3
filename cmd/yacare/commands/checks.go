package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/garagon/yacare/internal/config"
	"github.com/garagon/yacare/internal/rules"
)

var flagMeasure string

var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List all available quality checks",
	RunE:  runChecks,
}

func init() {
	checksCmd.Flags().StringVar(&flagMeasure, "measure", "", "Filter by measure")
	rootCmd.AddCommand(checksCmd)
}

type checkInfo struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Severity  string  `json:"severity"`
	Measure   string  `json:"measure"`
	Threshold float64 `json:"threshold"`
}

func runChecks(cmd *cobra.Command, args []string) error {
	compiled, err := loadAndCompileChecks(config.Config{})
	if err != nil {
		return err
	}

	sort.Slice(compiled, func(i, j int) bool {
		return compiled[i].ID < compiled[j].ID
	})

	if flagMeasure != "" {
		var filtered []*rules.CompiledCheck
		for _, c := range compiled {
			if string(c.Measure) == flagMeasure {
				filtered = append(filtered, c)
			}
		}
		compiled = filtered
	}

	w := cmd.OutOrStdout()

	if strings.ToLower(flagFormat) == "json" {
		infos := make([]checkInfo, len(compiled))
		for i, c := range compiled {
			infos[i] = checkInfo{
				ID:        c.ID,
				Name:      c.Name,
				Severity:  c.Severity.String(),
				Measure:   string(c.Measure),
				Threshold: c.Threshold,
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tSEVERITY\tMEASURE\tTHRESHOLD\n")
	fmt.Fprintf(tw, "--\t----\t--------\t-------\t---------\n")
	for _, c := range compiled {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%g\n", c.ID, c.Name, c.Severity.String(), c.Measure, c.Threshold)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d checks loaded\n", len(compiled))

	return nil
}
