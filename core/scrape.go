package core

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

// Section headings of the source report layout.
var (
	totalDataPattern   = regexp.MustCompile(`(?i)\n\s*Total Data\s*\n`)
	dailyWindowPattern = regexp.MustCompile(`(?is)Daily Data\s*\n(.*?)\n\s*Hourly Data`)
	dailyTailPattern   = regexp.MustCompile(`(?is)Daily Data\s*\n(.*)`)
)

const (
	// blockHeadLimit bounds how much of a block is scanned for daily rows
	// when the "Daily Data" heading is missing.
	blockHeadLimit = 5000

	// maxAppNameLen rejects name candidates that are sentences, not titles.
	maxAppNameLen = 60

	// nameScanDepth bounds how many trailing lines of the preceding section
	// are considered when looking for an app title.
	nameScanDepth = 8
)

// appBlock pairs one "Total Data" section with the tail of the text that
// preceded it, which is where the app's title line lives.
type appBlock struct {
	text     string
	nameHint string
}

// ScrapeMetrics parses extracted document text into per-app daily series.
// Sections that yield no numeric rows are dropped. If no section survives,
// the document cannot be analyzed and a *schema.ParseError is returned.
func ScrapeMetrics(source, text string) (*schema.ParseResult, error) {
	blocks := splitAppBlocks(text)

	apps := make([]schema.AppSeries, 0, len(blocks))
	for i, block := range blocks {
		rows := parseDailyRows(dailySectionFor(block.text))
		if len(rows) == 0 {
			continue
		}
		orderRows(rows)

		name := appNameFromTail(block.nameHint)
		if name == "" {
			name = fmt.Sprintf("App #%d", i+1)
		}
		for j := range rows {
			rows[j].App = name
		}
		apps = append(apps, schema.AppSeries{App: name, Metrics: rows})
	}
	dedupeAppNames(apps)

	if len(apps) == 0 {
		return nil, &schema.ParseError{Source: source, Err: schema.ErrNoSections}
	}
	return &schema.ParseResult{Source: source, Apps: apps}, nil
}

// splitAppBlocks cuts the document at every "Total Data" heading. The text
// before the first heading is intro material, but its trailing lines name
// the first app; likewise each block's tail names the app that follows it.
// Documents without the heading fall back to one anonymous block.
func splitAppBlocks(text string) []appBlock {
	parts := totalDataPattern.Split(text, -1)
	if len(parts) <= 1 {
		return []appBlock{{text: text}}
	}

	blocks := make([]appBlock, 0, len(parts)-1)
	for i := 1; i < len(parts); i++ {
		blocks = append(blocks, appBlock{text: parts[i], nameHint: parts[i-1]})
	}
	return blocks
}

// dailySectionFor returns the text between the "Daily Data" and "Hourly
// Data" headings. When the hourly heading is missing it takes everything
// after "Daily Data", and failing that the head of the block.
func dailySectionFor(block string) string {
	if m := dailyWindowPattern.FindStringSubmatch(block); m != nil {
		return m[1]
	}
	if m := dailyTailPattern.FindStringSubmatch(block); m != nil {
		return m[1]
	}
	return block[:min(len(block), blockHeadLimit)]
}

// parseDailyRows feeds every non-empty line through the rule table.
func parseDailyRows(daily string) []schema.DailyMetric {
	var rows []schema.DailyMetric
	for line := range strings.SplitSeq(daily, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if metric, ok := scanRow(line); ok {
			rows = append(rows, metric)
		}
	}
	return rows
}

// orderRows sorts a series chronologically as soon as any row carries a
// parsed date: dated rows lead in date order, undated rows follow in their
// document order. Fully undated series keep document order. Afterwards the
// 1-based day ordinal used on chart axes is stamped.
func orderRows(rows []schema.DailyMetric) {
	sort.SliceStable(rows, func(i, j int) bool {
		di, dj := rows[i].HasDate(), rows[j].HasDate()
		if di != dj {
			return di
		}
		return di && rows[i].Date.Before(rows[j].Date)
	})
	for i := range rows {
		rows[i].Day = i + 1
	}
}

// appNameFromTail walks the trailing lines of the text preceding a "Total
// Data" heading and returns the first one that reads like a title. Lines
// shaped like data rows are skipped, so apps whose titles end in a number
// fall back to an ordinal name.
func appNameFromTail(part string) string {
	lines := strings.Split(part, "\n")
	scanned := 0
	for i := len(lines) - 1; i >= 0 && scanned < nameScanDepth; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		scanned++
		if lineLooksLikeRow(line) || isSectionHeading(line) {
			continue
		}
		name := schema.CleanAppName(line)
		if name == "" || len([]rune(name)) > maxAppNameLen {
			continue
		}
		return name
	}
	return ""
}

// lineLooksLikeRow reports whether any row rule claims the line.
func lineLooksLikeRow(line string) bool {
	for _, rule := range rowRules {
		if _, matched := rule.apply(line); matched {
			return true
		}
	}
	return false
}

// isSectionHeading reports whether the line is one of the fixed layout
// headings rather than an app title.
func isSectionHeading(line string) bool {
	switch strings.ToLower(line) {
	case "total data", "daily data", "hourly data":
		return true
	}
	return false
}

// dedupeAppNames suffixes repeated names so downstream maps and chart
// legends stay unambiguous.
func dedupeAppNames(apps []schema.AppSeries) {
	seen := make(map[string]int, len(apps))
	for i := range apps {
		name := apps[i].App
		seen[name]++
		if n := seen[name]; n > 1 {
			renamed := fmt.Sprintf("%s (#%d)", name, n)
			apps[i].App = renamed
			for j := range apps[i].Metrics {
				apps[i].Metrics[j].App = renamed
			}
		}
	}
}
