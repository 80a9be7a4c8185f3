package output

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/garagon/yacare/internal/types"
)

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	cyan   = "\033[36m"
)

const (
	barWidth      = 40
	lineWidth     = 72
	variableWidth = 22
	checkIDWidth  = 26
	nameWidth     = 32
)

// TerminalFormatter outputs results in a triage-optimized format.
type TerminalFormatter struct {
	NoColor bool
	Verbose bool
}

func (f *TerminalFormatter) color(code, text string) string {
	if f.NoColor {
		return text
	}
	return code + text + reset
}

func (f *TerminalFormatter) separator() string {
	return strings.Repeat("─", lineWidth)
}

func (f *TerminalFormatter) sectionHeader(title string) string {
	prefix := "── " + title + " "
	displayLen := utf8.RuneCountInString(prefix)
	remaining := max(lineWidth-displayLen, 0)
	return prefix + strings.Repeat("─", remaining)
}

func (f *TerminalFormatter) FormatDiagnosis(w io.Writer, d *Diagnosis) error {
	if os.Getenv("NO_COLOR") != "" {
		f.NoColor = true
	}

	sep := f.separator()
	fmt.Fprintf(w, "\n%s\n", f.color(dim, sep))
	fmt.Fprintf(w, "  %s\n", f.color(bold, "YACARE DIAGNOSIS"))

	parts := []string{}
	if d.Target != "" {
		parts = append(parts, fmt.Sprintf("Target: %s", d.Target))
	}
	parts = append(parts, fmt.Sprintf("%d columns", len(d.Rows)))
	if d.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%.2fs", d.Duration.Seconds()))
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ·  "))
	fmt.Fprintf(w, "%s\n\n", f.color(dim, sep))

	header := fmt.Sprintf("  %-*s %-10s %10s %10s %10s", variableWidth, "VARIABLE", "CLASS", "MISSING%", "OUTLIER%", "SKEWNESS")
	fmt.Fprintf(w, "%s\n", f.color(bold, header))

	for _, row := range d.Rows {
		missing := f.colorRate(formatStat(row.MissingRate), row.MissingRate)
		fmt.Fprintf(w, "  %-*s %-10s %s %10s %10s\n",
			variableWidth, truncate(row.Variable, variableWidth),
			row.Class.String(),
			missing,
			formatStat(row.OutlierRate),
			formatStat(row.Skewness),
		)
	}

	fmt.Fprintf(w, "\n%s\n", f.color(dim, sep))
	return nil
}

// colorRate highlights missing rates: red at 50%+, yellow above zero.
func (f *TerminalFormatter) colorRate(text string, rate float64) string {
	padded := fmt.Sprintf("%10s", text)
	switch {
	case math.IsNaN(rate):
		return padded
	case rate >= 50:
		return f.color(red, padded)
	case rate > 0:
		return f.color(yellow, padded)
	default:
		return padded
	}
}

func (f *TerminalFormatter) FormatChecks(w io.Writer, result *types.CheckResult) error {
	if os.Getenv("NO_COLOR") != "" {
		f.NoColor = true
	}

	f.printChecksHeader(w, result)

	if len(result.Findings) == 0 {
		fmt.Fprintf(w, "\n  %s No quality issues found.\n", f.color(cyan, "✔"))
	} else {
		counts := countBySeverity(result.Findings)
		f.printDashboard(w, counts)

		for _, sev := range severityOrder {
			filtered := filterBySeverity(result.Findings, sev)
			if len(filtered) > 0 {
				f.printSeveritySection(w, sev, filtered)
			}
		}
	}

	f.printChecksFooter(w, result)
	return nil
}

func (f *TerminalFormatter) printChecksHeader(w io.Writer, result *types.CheckResult) {
	sep := f.separator()
	fmt.Fprintf(w, "\n%s\n", f.color(dim, sep))
	fmt.Fprintf(w, "  %s\n", f.color(bold, "YACARE QUALITY CHECKS"))

	parts := []string{}
	if result.Target != "" {
		parts = append(parts, fmt.Sprintf("Target: %s", result.Target))
	}
	parts = append(parts, fmt.Sprintf("%d columns", result.ColumnsChecked))
	parts = append(parts, fmt.Sprintf("%d checks", result.ChecksLoaded))
	if result.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%.2fs", result.Duration.Seconds()))
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ·  "))
	fmt.Fprintf(w, "%s\n", f.color(dim, sep))
}

func (f *TerminalFormatter) printDashboard(w io.Writer, counts map[types.Severity]int) {
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		return
	}

	fmt.Fprintln(w)
	for _, sev := range severityOrder {
		c := counts[sev]
		if c == 0 {
			continue
		}
		label := fmt.Sprintf("  %-10s", sev.String())
		bar := f.renderBar(c, maxCount, barWidth, sev)
		fmt.Fprintf(w, "%s %s %4d\n", f.color(bold, label), bar, c)
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	fmt.Fprintf(w, "\n  %s\n", f.color(bold, fmt.Sprintf("%d findings", total)))
}

func (f *TerminalFormatter) printSeveritySection(w io.Writer, sev types.Severity, findings []types.Finding) {
	title := fmt.Sprintf("%s (%d)", sev.String(), len(findings))
	fmt.Fprintf(w, "\n%s\n\n", f.color(bold, f.sectionHeader(title)))

	for _, finding := range findings {
		icon := f.severityIcon(finding.Severity)
		checkID := fmt.Sprintf("%-*s", checkIDWidth, finding.CheckID)
		name := fmt.Sprintf("%-*s", nameWidth, truncate(finding.CheckName, nameWidth))
		loc := fmt.Sprintf("%s [%d]", finding.Variable, finding.Pos)

		fmt.Fprintf(w, "    %s %s %s %s\n", icon, f.color(bold, checkID), name, f.color(cyan, loc))
		fmt.Fprintf(w, "      %s %s = %s (threshold %s)\n",
			f.color(dim, "│"), finding.Measure, formatStat(finding.Value), formatStat(finding.Threshold))
	}
}

func (f *TerminalFormatter) printChecksFooter(w io.Writer, result *types.CheckResult) {
	sep := f.separator()
	fmt.Fprintf(w, "\n%s\n", f.color(dim, sep))

	parts := []string{
		fmt.Sprintf("%d columns checked", result.ColumnsChecked),
		fmt.Sprintf("%d findings", len(result.Findings)),
		fmt.Sprintf("%d checks", result.ChecksLoaded),
	}
	if result.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%.2fs", result.Duration.Seconds()))
	}

	fmt.Fprintf(w, "  %s\n", strings.Join(parts, " · "))
	fmt.Fprintf(w, "%s\n", f.color(dim, sep))
}

func (f *TerminalFormatter) severityIcon(sev types.Severity) string {
	switch sev {
	case types.SeverityCritical:
		return f.color(red+bold, "✖")
	case types.SeverityHigh:
		return f.color(red, "▲")
	case types.SeverityMedium:
		return f.color(yellow, "■")
	case types.SeverityLow:
		return f.color(blue, "●")
	case types.SeverityInfo:
		return f.color(cyan, "○")
	default:
		return "?"
	}
}

func (f *TerminalFormatter) severityColor(sev types.Severity) string {
	switch sev {
	case types.SeverityCritical:
		return red + bold
	case types.SeverityHigh:
		return red
	case types.SeverityMedium:
		return yellow
	case types.SeverityLow:
		return blue
	case types.SeverityInfo:
		return cyan
	default:
		return ""
	}
}

func (f *TerminalFormatter) renderBar(count, maxCount, width int, sev types.Severity) string {
	if maxCount == 0 {
		return strings.Repeat("░", width)
	}
	filled := count * width / maxCount
	if filled == 0 && count > 0 {
		filled = 1
	}
	// Always keep at least 1 empty block so the bar boundary is visible
	if filled >= width {
		filled = width - 1
	}
	empty := width - filled

	filledStr := strings.Repeat("█", filled)
	emptyStr := strings.Repeat("░", empty)
	return f.color(f.severityColor(sev), filledStr) + f.color(dim, emptyStr)
}

var severityOrder = []types.Severity{
	types.SeverityCritical,
	types.SeverityHigh,
	types.SeverityMedium,
	types.SeverityLow,
	types.SeverityInfo,
}

func countBySeverity(findings []types.Finding) map[types.Severity]int {
	counts := map[types.Severity]int{}
	for _, finding := range findings {
		counts[finding.Severity]++
	}
	return counts
}

func filterBySeverity(findings []types.Finding, sev types.Severity) []types.Finding {
	var result []types.Finding
	for _, f := range findings {
		if f.Severity == sev {
			result = append(result, f)
		}
	}
	return result
}

// formatStat renders a statistic with 3 decimals, or "-" when undefined.
func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}

func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\t", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
