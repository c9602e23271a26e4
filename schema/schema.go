// Package schema has configs, models and shared types for all parts of ivtreport.
package schema

import "time"

// DailyMetric represents one parsed day of traffic data for a single app.
// It captures the raw day label from the source report, the parsed date when
// the label carried one, and the two numeric columns the scrape recovers.
type DailyMetric struct {
	App      string    `json:"app"`           // App the row belongs to
	Day      int       `json:"day"`           // 1-based position within the app series
	Date     time.Time `json:"date,omitzero"` // Parsed calendar date; zero when the label has none
	DayLabel string    `json:"day_label"`     // Raw day label as found in the source text
	Traffic  float64   `json:"traffic"`       // Total request volume for the day (0 when absent)
	IVT      float64   `json:"ivt"`           // Invalid-traffic ratio in [0,1]
}

// HasDate reports whether the row carried a parseable calendar date.
func (m *DailyMetric) HasDate() bool {
	return !m.Date.IsZero()
}

// AppSeries is the ordered sequence of daily metrics for one app.
// A series is never empty: sections that yield no rows are dropped at parse time.
type AppSeries struct {
	App     string        `json:"app"`
	Metrics []DailyMetric `json:"metrics"`
}

// HasDates reports whether any row in the series carries a parsed date.
func (s *AppSeries) HasDates() bool {
	for i := range s.Metrics {
		if s.Metrics[i].HasDate() {
			return true
		}
	}
	return false
}

// IVTValues returns the IVT column of the series in day order.
func (s *AppSeries) IVTValues() []float64 {
	values := make([]float64, len(s.Metrics))
	for i := range s.Metrics {
		values[i] = s.Metrics[i].IVT
	}
	return values
}

// MaxIVT returns the largest IVT value in the series.
func (s *AppSeries) MaxIVT() float64 {
	var maxVal float64
	for i := range s.Metrics {
		if s.Metrics[i].IVT > maxVal {
			maxVal = s.Metrics[i].IVT
		}
	}
	return maxVal
}

// ParseResult is the full outcome of scraping one source report:
// every recognized app series in first-seen order. App names are unique
// within a result so downstream charts can never merge two sections.
type ParseResult struct {
	Source string      `json:"source"` // Base name of the source report
	Apps   []AppSeries `json:"apps"`
}

// TotalRows returns the number of parsed rows across all apps.
func (r *ParseResult) TotalRows() int {
	total := 0
	for i := range r.Apps {
		total += len(r.Apps[i].Metrics)
	}
	return total
}

// AppNames returns the app names in first-seen order.
func (r *ParseResult) AppNames() []string {
	names := make([]string, len(r.Apps))
	for i := range r.Apps {
		names[i] = r.Apps[i].App
	}
	return names
}

// Rows flattens all series into a single row list, apps in first-seen order.
func (r *ParseResult) Rows() []DailyMetric {
	rows := make([]DailyMetric, 0, r.TotalRows())
	for i := range r.Apps {
		rows = append(rows, r.Apps[i].Metrics...)
	}
	return rows
}

// AppSummary holds the per-app aggregate figures shown on the report summary page.
type AppSummary struct {
	App       string  `json:"app"`
	Rows      int     `json:"rows"`
	MeanIVT   float64 `json:"ivt_mean"`
	MedianIVT float64 `json:"ivt_median"`
	MinIVT    float64 `json:"ivt_min"`
	MaxIVT    float64 `json:"ivt_max"`
	Traffic   float64 `json:"traffic_total"`
	HighDays  int     `json:"days_above_threshold"` // Days with IVT strictly above the threshold
	AllZero   bool    `json:"all_zero"`             // Every parsed row has IVT == 0
}

// Summary aggregates the parse result against the configured IVT threshold.
type Summary struct {
	Threshold   float64      `json:"threshold"`
	Apps        []AppSummary `json:"apps"`
	TotalRows   int          `json:"total_rows"`
	HighDays    int          `json:"days_above_threshold"`
	FlaggedApps []string     `json:"flagged_apps"`  // Apps with at least one day above the threshold
	AllZeroApps []string     `json:"all_zero_apps"` // Apps whose every parsed IVT is zero
}
