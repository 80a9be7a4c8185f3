package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garagon/yacare/internal/config"
	"github.com/garagon/yacare/internal/frame"
	"github.com/garagon/yacare/internal/output"
	"github.com/garagon/yacare/internal/rules"
	"github.com/garagon/yacare/internal/rules/builtin"
	"github.com/garagon/yacare/internal/types"
)

var (
	flagFailOn  string
	flagCI      bool
	flagVerbose bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Evaluate quality checks against a data file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagFailOn, "fail-on", "", "Exit with code 1 if findings at or above this severity (critical, high, medium, low)")
	checkCmd.Flags().BoolVar(&flagCI, "ci", false, "CI mode: equivalent to --fail-on high --format terminal --no-color")
	checkCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show check names for critical and high findings")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]

	cfg := loadFileConfig(cmd, target)
	applyCIDefaults()

	minSev, err := parseSeverityFlag()
	if err != nil {
		return err
	}

	compiled, err := loadAndCompileChecks(cfg)
	if err != nil {
		return err
	}

	tbl, err := readTable(target)
	if err != nil {
		return err
	}

	result, err := rules.Evaluate(tbl, compiled, flagWorkers)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	result.Target = target

	if minSev > types.SeverityInfo {
		var kept []types.Finding
		for _, f := range result.Findings {
			if f.Severity >= minSev {
				kept = append(kept, f)
			}
		}
		result.Findings = kept
	}

	if err := writeChecks(result); err != nil {
		return err
	}

	return checkFailOnThreshold(result)
}

func loadFileConfig(cmd *cobra.Command, target string) config.Config {
	cfg, err := config.Load(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if !cmd.Flags().Changed("severity") && cfg.Severity != "" {
		flagSeverity = cfg.Severity
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		flagFormat = cfg.Format
	}
	if !cmd.Flags().Changed("fail-on") && cfg.FailOn != "" {
		flagFailOn = cfg.FailOn
	}
	if !cmd.Flags().Changed("checks") && cfg.Checks != "" {
		flagChecks = cfg.Checks
	}
	if !cmd.Flags().Changed("delimiter") && cfg.Delimiter != "" {
		flagDelimiter = cfg.Delimiter
	}
	if !cmd.Flags().Changed("na") && len(cfg.NAStrings) > 0 {
		flagNAStrings = cfg.NAStrings
	}
	if !cmd.Flags().Changed("factor") && len(cfg.Factors) > 0 {
		flagFactors = cfg.Factors
	}
	return cfg
}

func applyCIDefaults() {
	if flagCI {
		if flagFailOn == "" {
			flagFailOn = "high"
		}
		if flagFormat == "terminal" {
			flagNoColor = true
		}
	}
	if os.Getenv("NO_COLOR") != "" {
		flagNoColor = true
	}
}

func parseSeverityFlag() (types.Severity, error) {
	if flagSeverity == "" {
		return types.SeverityInfo, nil
	}
	sev, err := types.ParseSeverity(flagSeverity)
	if err != nil {
		return 0, fmt.Errorf("invalid --severity: %w", err)
	}
	return sev, nil
}

func loadAndCompileChecks(cfg config.Config) ([]*rules.CompiledCheck, error) {
	rawChecks, err := rules.LoadFromFS(builtin.FS())
	if err != nil {
		return nil, fmt.Errorf("loading built-in checks: %w", err)
	}

	if flagChecks != "" {
		custom, err := rules.LoadFromDir(flagChecks)
		if err != nil {
			return nil, fmt.Errorf("loading custom checks from %s: %w", flagChecks, err)
		}
		rawChecks = append(rawChecks, custom...)
	}

	compiled, errs := rules.CompileAll(rawChecks)
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "warning: %v\n", e)
	}

	if len(cfg.CheckOverrides) > 0 {
		overrides := make(map[string]rules.CheckOverride, len(cfg.CheckOverrides))
		for id, ovr := range cfg.CheckOverrides {
			overrides[id] = rules.CheckOverride{Severity: ovr.Severity, Disabled: ovr.Disabled}
		}
		var ovrErrs []error
		compiled, ovrErrs = rules.ApplyOverrides(compiled, overrides)
		for _, e := range ovrErrs {
			fmt.Fprintf(os.Stderr, "warning: %v\n", e)
		}
	}

	if len(flagDisableChecks) > 0 {
		disabled := make(map[string]bool)
		for _, id := range flagDisableChecks {
			disabled[strings.TrimSpace(id)] = true
		}
		compiled = rules.FilterByIDs(compiled, disabled)
	}

	return compiled, nil
}

func readTable(target string) (*frame.Table, error) {
	opts := frame.ReadOptions{
		NAStrings: flagNAStrings,
		Factors:   flagFactors,
	}
	if flagDelimiter != "" {
		opts.Delimiter = []rune(flagDelimiter)[0]
	}
	tbl, err := frame.ReadFile(target, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", target, err)
	}
	return tbl, nil
}

func newFormatter() output.Formatter {
	switch strings.ToLower(flagFormat) {
	case "json":
		return &output.JSONFormatter{}
	case "markdown", "md":
		return &output.MarkdownFormatter{}
	case "html":
		return &output.HTMLFormatter{}
	default:
		return &output.TerminalFormatter{NoColor: flagNoColor, Verbose: flagVerbose}
	}
}

func outputWriter() (*os.File, func(), error) {
	if flagOutput == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(flagOutput)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func writeChecks(result *types.CheckResult) error {
	output.ToolVersion = Version

	w, closeFn, err := outputWriter()
	if err != nil {
		return err
	}
	defer closeFn()

	return newFormatter().FormatChecks(w, result)
}

func checkFailOnThreshold(result *types.CheckResult) error {
	if flagFailOn == "" {
		return nil
	}
	threshold, err := types.ParseSeverity(flagFailOn)
	if err != nil {
		return fmt.Errorf("invalid --fail-on: %w", err)
	}
	for _, f := range result.Findings {
		if f.Severity >= threshold {
			os.Exit(1)
		}
	}
	return nil
}
