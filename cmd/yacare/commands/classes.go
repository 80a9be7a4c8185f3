package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/garagon/yacare/internal/diagnose"
)

var flagKind string

var classesCmd = &cobra.Command{
	Use:   "classes [file]",
	Short: "Print the effective class of each column",
	Args:  cobra.ExactArgs(1),
	RunE:  runClasses,
}

func init() {
	classesCmd.Flags().StringVar(&flagKind, "kind", "", "Select columns by class kind (numerical, categorical, categorical2)")
	rootCmd.AddCommand(classesCmd)
}

func runClasses(cmd *cobra.Command, args []string) error {
	target := args[0]

	loadFileConfig(cmd, target)

	tbl, err := readTable(target)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if flagKind != "" {
		selected, err := diagnose.FindClass(tbl, diagnose.Kind(flagKind), flagWorkers)
		if err != nil {
			return err
		}
		if strings.ToLower(flagFormat) == "json" {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(selected)
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "POS\tVARIABLE\tCLASS\n")
		for _, d := range selected {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", d.Pos, d.Name, d.Class)
		}
		return tw.Flush()
	}

	classes, err := diagnose.GetClass(tbl)
	if err != nil {
		return err
	}
	if strings.ToLower(flagFormat) == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(classes)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "VARIABLE\tCLASS\n")
	for _, vc := range classes {
		fmt.Fprintf(tw, "%s\t%s\n", vc.Variable, vc.Class)
	}
	return tw.Flush()
}
