package report

import (
	"bytes"
	"fmt"
	"strconv"
	"sync"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

// Chart geometry, sized to fill an A4 page width when embedded.
const (
	chartWidth  = 827
	chartHeight = 500

	// maxAxisTicks caps how many day ticks a chart axis shows.
	maxAxisTicks = 10
)

// renderAppCharts draws every app's chart concurrently, capped at the given
// worker count, and returns the PNGs in app order.
func renderAppCharts(apps []schema.AppSeries, workers int) ([][]byte, error) {
	charts := make([][]byte, len(apps))
	errs := make([]error, len(apps))
	sem := make(chan struct{}, max(1, workers))

	var wg sync.WaitGroup
	for i := range apps {
		idx := i // Capture loop variable for goroutine
		wg.Go(func() {
			sem <- struct{}{}
			defer func() { <-sem }()
			// Each goroutine writes to a *unique* index, which is safe.
			charts[idx], errs[idx] = renderAppChart(&apps[idx])
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return charts, nil
}

// renderAppChart draws one app's daily IVT series as a PNG line chart.
// Dated series label their ticks with calendar dates; label-only series
// fall back to the raw day labels.
func renderAppChart(series *schema.AppSeries) ([]byte, error) {
	xAxisName := "Day"
	if series.HasDates() {
		xAxisName = "Date"
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s — Extracted Daily IVT", series.App),
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name:  xAxisName,
			Range: ordinalRange(len(series.Metrics)),
			Ticks: dayTicks(series.Metrics),
		},
		YAxis: chart.YAxis{
			Name:  "IVT (extracted numeric)",
			Range: valueRange(series.IVTValues()),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    series.App,
				XValues: ordinals(len(series.Metrics)),
				YValues: series.IVTValues(),
				Style:   chart.Style{StrokeWidth: 1, DotWidth: 4},
			},
		},
	}

	return renderPNG(&graph)
}

// renderCombinedChart overlays every app on one ordinal day axis, so
// sections with and without dates stay comparable.
func renderCombinedChart(apps []schema.AppSeries) ([]byte, error) {
	maxDays := 0
	var all []float64
	for i := range apps {
		maxDays = max(maxDays, len(apps[i].Metrics))
		all = append(all, apps[i].IVTValues()...)
	}

	graph := chart.Chart{
		Title:  "Combined IVT trends (per app)",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name:  "Day",
			Range: ordinalRange(maxDays),
			Ticks: ordinalTicks(maxDays),
		},
		YAxis: chart.YAxis{
			Name:  "IVT (extracted)",
			Range: valueRange(all),
		},
		Series: combinedSeries(apps),
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return renderPNG(&graph)
}

// combinedSeries builds exactly one overlay series per app, named after it,
// on the shared ordinal day axis.
func combinedSeries(apps []schema.AppSeries) []chart.Series {
	series := make([]chart.Series, 0, len(apps))
	for i := range apps {
		app := &apps[i]
		series = append(series, chart.ContinuousSeries{
			Name:    app.App,
			XValues: ordinals(len(app.Metrics)),
			YValues: app.IVTValues(),
			Style:   chart.Style{StrokeWidth: 1, DotWidth: 4},
		})
	}
	return series
}

// renderPNG rasterizes a configured chart.
func renderPNG(graph *chart.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart %q: %w", graph.Title, err)
	}
	return buf.Bytes(), nil
}

// ordinals returns the x values 1..n.
func ordinals(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i + 1)
	}
	return values
}

// ordinalRange pads the day axis by half a day on both sides so single-point
// series still have a drawable range and edge markers are not clipped.
func ordinalRange(n int) *chart.ContinuousRange {
	return &chart.ContinuousRange{Min: 0.5, Max: float64(n) + 0.5}
}

// valueRange pads the y axis around the observed IVT values. Flat series get
// a fixed pad so the range never collapses to zero.
func valueRange(values []float64) *chart.ContinuousRange {
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo == hi {
		return &chart.ContinuousRange{Min: lo - 0.01, Max: hi + 0.01}
	}
	pad := (hi - lo) * 0.05
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// dayTicks labels the day axis with parsed dates or raw labels, thinned to
// at most maxAxisTicks entries with the last day always shown.
func dayTicks(metrics []schema.DailyMetric) []chart.Tick {
	step := max(1, (len(metrics)+maxAxisTicks-1)/maxAxisTicks)

	var ticks []chart.Tick
	for i := 0; i < len(metrics); i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i + 1), Label: schema.FormatDay(&metrics[i])})
	}
	if last := len(metrics) - 1; last%step != 0 {
		ticks = append(ticks, chart.Tick{Value: float64(last + 1), Label: schema.FormatDay(&metrics[last])})
	}
	return ticks
}

// ordinalTicks labels the shared day axis of the combined chart.
func ordinalTicks(n int) []chart.Tick {
	step := max(1, (n+maxAxisTicks-1)/maxAxisTicks)

	var ticks []chart.Tick
	for i := 1; i <= n; i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: strconv.Itoa(i)})
	}
	if n > 1 && (n-1)%step != 0 {
		ticks = append(ticks, chart.Tick{Value: float64(n), Label: strconv.Itoa(n)})
	}
	return ticks
}
