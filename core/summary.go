package core

import (
	"sort"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

// BuildSummary computes per-app and overall aggregates for a parse result.
// Days count as high when their IVT is strictly above the threshold. Apps are
// listed worst observed day first, so the observation pages lead with the
// apps that need attention.
func BuildSummary(result *schema.ParseResult, threshold float64) *schema.Summary {
	apps := make([]schema.AppSummary, 0, len(result.Apps))
	for i := range result.Apps {
		apps = append(apps, summarizeApp(&result.Apps[i], threshold))
	}

	summary := &schema.Summary{
		Threshold: threshold,
		Apps:      RankAppSummaries(apps),
	}
	for i := range summary.Apps {
		app := &summary.Apps[i]
		summary.TotalRows += app.Rows
		summary.HighDays += app.HighDays
		if app.HighDays > 0 {
			summary.FlaggedApps = append(summary.FlaggedApps, app.App)
		}
		if app.AllZero {
			summary.AllZeroApps = append(summary.AllZeroApps, app.App)
		}
	}
	return summary
}

// summarizeApp reduces one series to its summary figures.
func summarizeApp(series *schema.AppSeries, threshold float64) schema.AppSummary {
	values := series.IVTValues()

	app := schema.AppSummary{
		App:       series.App,
		Rows:      len(values),
		MeanIVT:   mean(values),
		MedianIVT: median(values),
		MinIVT:    values[0],
		MaxIVT:    values[0],
		AllZero:   true,
	}
	for i := range series.Metrics {
		m := &series.Metrics[i]
		app.MinIVT = min(app.MinIVT, m.IVT)
		app.MaxIVT = max(app.MaxIVT, m.IVT)
		app.Traffic += m.Traffic
		if m.IVT > threshold {
			app.HighDays++
		}
		if m.IVT != 0 {
			app.AllZero = false
		}
	}
	return app
}

// mean returns the arithmetic mean of values. Series are never empty.
func mean(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// median returns the middle value, averaging the two middles for even counts.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
