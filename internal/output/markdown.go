package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/garagon/yacare/internal/types"
)

// MarkdownFormatter outputs results as GitHub-flavored markdown,
// designed for GitHub Actions Job Summaries and PR comments.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) FormatDiagnosis(w io.Writer, d *Diagnosis) error {
	fmt.Fprintf(w, "### Yacare Diagnosis — %d columns\n\n", len(d.Rows))
	if d.Target != "" {
		fmt.Fprintf(w, "> **Target:** `%s` · %.2fs\n\n", d.Target, d.Duration.Seconds())
	}

	fmt.Fprintf(w, "| Variable | Class | Missing %% | Outlier %% | Skewness |\n")
	fmt.Fprintf(w, "|----------|-------|-----------|-----------|----------|\n")
	for _, row := range d.Rows {
		fmt.Fprintf(w, "| `%s` | %s | %s | %s | %s |\n",
			escapeMarkdown(row.Variable), row.Class.String(),
			formatStat(row.MissingRate), formatStat(row.OutlierRate), formatStat(row.Skewness))
	}
	fmt.Fprintf(w, "\n")

	f.printFooter(w)
	return nil
}

func (f *MarkdownFormatter) FormatChecks(w io.Writer, result *types.CheckResult) error {
	if len(result.Findings) == 0 {
		fmt.Fprintf(w, "### :white_check_mark: Yacare Quality Checks — No issues found\n\n")
		fmt.Fprintf(w, "> %d columns · %d checks · %.2fs\n\n",
			result.ColumnsChecked, result.ChecksLoaded, result.Duration.Seconds())
		f.printFooter(w)
		return nil
	}

	counts := countBySeverity(result.Findings)
	fmt.Fprintf(w, "### :rotating_light: Yacare Quality Checks — %d findings\n\n", len(result.Findings))
	fmt.Fprintf(w, "> **Target:** `%s` · %d columns · %d checks · %.2fs\n\n",
		result.Target, result.ColumnsChecked, result.ChecksLoaded, result.Duration.Seconds())

	var badges []string
	for _, sev := range severityOrder {
		c := counts[sev]
		if c == 0 {
			continue
		}
		badges = append(badges, fmt.Sprintf("%s **%d %s**", severityEmoji(sev), c, sev.String()))
	}
	fmt.Fprintf(w, "%s\n\n", strings.Join(badges, " · "))

	for _, sev := range severityOrder {
		filtered := filterBySeverity(result.Findings, sev)
		if len(filtered) == 0 {
			continue
		}

		fmt.Fprintf(w, "<details%s>\n", openByDefault(sev))
		fmt.Fprintf(w, "<summary>%s <strong>%s (%d)</strong></summary>\n\n", severityEmoji(sev), sev.String(), len(filtered))

		fmt.Fprintf(w, "| Check | Variable | Value | Threshold |\n")
		fmt.Fprintf(w, "|-------|----------|-------|-----------|\n")
		for _, finding := range filtered {
			fmt.Fprintf(w, "| `%s` | `%s` | %s %s | %s |\n",
				finding.CheckID, escapeMarkdown(finding.Variable),
				finding.Measure, formatStat(finding.Value), formatStat(finding.Threshold))
		}

		fmt.Fprintf(w, "\n</details>\n\n")
	}

	f.printFooter(w)
	return nil
}

func (f *MarkdownFormatter) printFooter(w io.Writer) {
	fmt.Fprintf(w, "---\n")
	fmt.Fprintf(w, "*Generated by [Yacare](https://github.com/garagon/yacare) %s*\n", ToolVersion)
}

func severityEmoji(sev types.Severity) string {
	switch sev {
	case types.SeverityCritical:
		return ":red_circle:"
	case types.SeverityHigh:
		return ":orange_circle:"
	case types.SeverityMedium:
		return ":yellow_circle:"
	case types.SeverityLow:
		return ":blue_circle:"
	case types.SeverityInfo:
		return ":white_circle:"
	default:
		return ":black_circle:"
	}
}

func openByDefault(sev types.Severity) string {
	if sev == types.SeverityCritical || sev == types.SeverityHigh {
		return " open"
	}
	return ""
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
