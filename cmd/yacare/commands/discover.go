package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/garagon/yacare/discover"
	"github.com/garagon/yacare/internal/config"
)

var discoverCmd = &cobra.Command{
	Use:   "discover [path]",
	Short: "Discover tabular data files under a directory",
	Long:  `Walks a directory tree for CSV and TSV files and lists each file with its header columns. Respects .yacareignore patterns.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := config.Load(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	result, err := discover.Scan(root, cfg.Ignore)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	switch flagFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		fmt.Print(discover.FormatTree(result))
		return nil
	}
}
