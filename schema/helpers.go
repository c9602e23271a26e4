package schema

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// CleanAppName normalizes a heading line into a displayable app name:
// surrounding punctuation is trimmed and internal whitespace collapsed.
func CleanAppName(raw string) string {
	trimmed := strings.TrimFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return strings.Join(strings.Fields(trimmed), " ")
}

// FormatDay renders the day column for tables and CSV: the parsed date when
// present, otherwise the raw label, otherwise the ordinal position.
func FormatDay(m *DailyMetric) string {
	if m.HasDate() {
		return m.Date.Format(time.DateOnly)
	}
	if m.DayLabel != "" {
		return m.DayLabel
	}
	return fmt.Sprintf("#%d", m.Day)
}

// ObservationLines renders the summary as the text block shown on the
// report's observation pages and after the metrics table.
func (s *Summary) ObservationLines() []string {
	lines := []string{
		"Automated Observations & Summary",
		"================================",
		"",
	}

	if len(s.Apps) == 0 {
		lines = append(lines,
			"No numeric IVT values were reliably parsed from this PDF using heuristics.",
			"Please provide the raw CSV/Excel for accurate structured analysis.",
		)
		return lines
	}

	for i := range s.Apps {
		app := &s.Apps[i]
		lines = append(lines,
			fmt.Sprintf("%s:", app.App),
			fmt.Sprintf("  • Parsed rows: %d", app.Rows),
			fmt.Sprintf("  • IVT mean: %.6f", app.MeanIVT),
			fmt.Sprintf("  • IVT median: %.6f", app.MedianIVT),
			fmt.Sprintf("  • IVT min/max: %.6f / %.6f", app.MinIVT, app.MaxIVT),
		)
		if app.HighDays > 0 {
			lines = append(lines, fmt.Sprintf("  • Note: %d day(s) with IVT above %.2f (possible high invalid-traffic days).", app.HighDays, s.Threshold))
		}
		if app.AllZero {
			lines = append(lines, "  • Note: All extracted IVT values are zero for parsed rows.")
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"General recommendations:",
		"  - Provide the raw structured data (CSV/Excel) for exact parsing and deeper analysis.",
		"  - Monitor idfa_ua_ratio and idfa_ip_ratio alongside IVT. High idfa_ua_ratio -> spoofing; high idfa_ip_ratio -> proxy/datacenter usage.",
		"  - Add anomaly detection on requests_per_idfa (flag spikes > 2x baseline).",
		"  - For days with high IVT, sample user-agents and IP ranges to identify patterns.",
		"",
		"Limitations: This is an automated heuristic parse of a PDF with inconsistent formatting. Use original structured files for higher-confidence analytics.",
	)
	return lines
}
