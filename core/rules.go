package core

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

// Line patterns for the daily tables, ordered from most to least specific.
var (
	isoPrefixPattern   = regexp.MustCompile(`^(20\d{2}-\d{2}-\d{2})(?:\s+\d{1,2}:\d{2}:\d{2})?\b(.*)$`)
	dayRangePattern    = regexp.MustCompile(`(?i)^(\d{1,2}\s+\w+(?:\s+to\s+\d{1,2}\s+\w+)?)\s+(.*)$`)
	isoAnywherePattern = regexp.MustCompile(`20\d{2}-\d{2}-\d{2}`)
	numericToken       = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// maxRawLabelLen caps day labels built from unrecognized lines.
const maxRawLabelLen = 40

// rowRule matches one daily line layout and extracts its fields.
// apply reports whether the line has this rule's shape; a nil metric on a
// matched line means the line carried no numeric value and must be skipped.
type rowRule struct {
	name  string
	apply func(line string) (*schema.DailyMetric, bool)
}

// rowRules is the ordered rule table for daily lines. The first rule whose
// shape matches owns the line; later rules never see it.
var rowRules = []rowRule{
	{name: "iso-date-prefix", apply: matchISOPrefix},
	{name: "day-range-prefix", apply: matchDayRange},
	{name: "iso-date-anywhere", apply: matchISOAnywhere},
	{name: "trailing-number", apply: matchTrailingNumber},
}

// scanRow runs the rule table against one trimmed line and returns the
// extracted metric, if any.
func scanRow(line string) (schema.DailyMetric, bool) {
	for _, rule := range rowRules {
		metric, matched := rule.apply(line)
		if !matched {
			continue
		}
		if metric == nil {
			return schema.DailyMetric{}, false
		}
		return *metric, true
	}
	return schema.DailyMetric{}, false
}

// matchISOPrefix handles lines like "2025-09-12 0:00:00 1191603 1189884 0.00427".
// The optional time of day is discarded.
func matchISOPrefix(line string) (*schema.DailyMetric, bool) {
	m := isoPrefixPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	metric, ok := metricFromTokens(strings.Fields(m[2]))
	if !ok {
		return nil, true
	}
	metric.DayLabel = m[1]
	if date, err := time.Parse(time.DateOnly, m[1]); err == nil {
		metric.Date = date.UTC()
	}
	return &metric, true
}

// matchDayRange handles lines like "11 Sep to 15 Sep 1191603 1189884 0.00427"
// or "8 Sep 530942 0.00089". Without a year these rows keep a label only.
func matchDayRange(line string) (*schema.DailyMetric, bool) {
	m := dayRangePattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	metric, ok := metricFromTokens(strings.Fields(m[2]))
	if !ok {
		return nil, true
	}
	metric.DayLabel = m[1]
	return &metric, true
}

// matchISOAnywhere handles lines where an ISO date appears mid-line, such as
// rows prefixed with stray table cells.
func matchISOAnywhere(line string) (*schema.DailyMetric, bool) {
	dateStr := isoAnywherePattern.FindString(line)
	if dateStr == "" {
		return nil, false
	}
	rest := strings.TrimSpace(strings.ReplaceAll(line, dateStr, ""))
	metric, ok := metricFromTokens(strings.Fields(rest))
	if !ok {
		return nil, true
	}
	metric.DayLabel = dateStr
	if date, err := time.Parse(time.DateOnly, dateStr); err == nil {
		metric.Date = date.UTC()
	}
	return &metric, true
}

// matchTrailingNumber is the catch-all for lines that carry a numeric value
// but no recognizable date. The clipped raw line becomes the day label.
func matchTrailingNumber(line string) (*schema.DailyMetric, bool) {
	metric, ok := metricFromTokens(strings.Fields(line))
	if !ok {
		return nil, false
	}
	metric.DayLabel = clipLabel(line, maxRawLabelLen)
	return &metric, true
}

// metricFromTokens extracts traffic and IVT from the numeric tokens of a row.
// The rightmost numeric token is the IVT share; the leftmost is the traffic
// count, kept only when the row carries at least two numeric tokens.
func metricFromTokens(tokens []string) (schema.DailyMetric, bool) {
	ivt, ivtIdx, ok := lastNumericToken(tokens)
	if !ok {
		return schema.DailyMetric{}, false
	}

	metric := schema.DailyMetric{IVT: ivt}
	for i := range ivtIdx {
		if !numericToken.MatchString(tokens[i]) {
			continue
		}
		if traffic, err := strconv.ParseFloat(tokens[i], 64); err == nil {
			metric.Traffic = traffic
			break
		}
	}
	return metric, true
}

// lastNumericToken scans tokens right to left and returns the first value
// that parses as a number, along with its index.
func lastNumericToken(tokens []string) (float64, int, bool) {
	for i := len(tokens) - 1; i >= 0; i-- {
		if !numericToken.MatchString(tokens[i]) {
			continue
		}
		if v, err := strconv.ParseFloat(tokens[i], 64); err == nil {
			return v, i, true
		}
	}
	return 0, -1, false
}

// clipLabel shortens raw-line labels to keep axes and tables readable.
func clipLabel(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return s
}
