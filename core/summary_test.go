package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

func TestBuildSummary(t *testing.T) {
	parsed := &schema.ParseResult{
		Source: "traffic.pdf",
		Apps: []schema.AppSeries{
			{
				App: "AppA",
				Metrics: []schema.DailyMetric{
					{App: "AppA", Day: 1, Traffic: 1000, IVT: 0.02},
					{App: "AppA", Day: 2, Traffic: 1100, IVT: 0.6},
				},
			},
			{
				App: "AppB",
				Metrics: []schema.DailyMetric{
					{App: "AppB", Day: 1, Traffic: 500, IVT: 0},
					{App: "AppB", Day: 2, Traffic: 600, IVT: 0},
				},
			},
		},
	}

	summary := BuildSummary(parsed, 0.5)
	require.Len(t, summary.Apps, 2)

	t.Run("app with one high day", func(t *testing.T) {
		app := summary.Apps[0]
		assert.Equal(t, "AppA", app.App)
		assert.Equal(t, 2, app.Rows)
		assert.InDelta(t, 0.31, app.MeanIVT, 1e-9)
		assert.InDelta(t, 0.31, app.MedianIVT, 1e-9)
		assert.InDelta(t, 0.02, app.MinIVT, 1e-9)
		assert.InDelta(t, 0.6, app.MaxIVT, 1e-9)
		assert.Equal(t, 2100.0, app.Traffic)
		assert.Equal(t, 1, app.HighDays)
		assert.False(t, app.AllZero)
	})

	t.Run("all-zero app", func(t *testing.T) {
		app := summary.Apps[1]
		assert.Equal(t, "AppB", app.App)
		assert.Zero(t, app.HighDays)
		assert.True(t, app.AllZero)
		assert.Equal(t, 1100.0, app.Traffic)
	})

	t.Run("overall aggregates", func(t *testing.T) {
		assert.InDelta(t, 0.5, summary.Threshold, 1e-9)
		assert.Equal(t, 4, summary.TotalRows)
		assert.Equal(t, 1, summary.HighDays)
		assert.Equal(t, []string{"AppA"}, summary.FlaggedApps)
		assert.Equal(t, []string{"AppB"}, summary.AllZeroApps)
	})
}

func TestBuildSummaryRanksWorstFirst(t *testing.T) {
	parsed := &schema.ParseResult{
		Apps: []schema.AppSeries{
			{App: "Calm", Metrics: []schema.DailyMetric{{IVT: 0.01}}},
			{App: "Spiky", Metrics: []schema.DailyMetric{{IVT: 0.02}, {IVT: 0.7}}},
			{App: "Middling", Metrics: []schema.DailyMetric{{IVT: 0.3}}},
		},
	}

	summary := BuildSummary(parsed, 0.5)

	got := make([]string, 0, len(summary.Apps))
	for _, app := range summary.Apps {
		got = append(got, app.App)
	}
	assert.Equal(t, []string{"Spiky", "Middling", "Calm"}, got)
}

func TestBuildSummaryThresholdIsExclusive(t *testing.T) {
	parsed := &schema.ParseResult{
		Apps: []schema.AppSeries{
			{
				App: "Edge",
				Metrics: []schema.DailyMetric{
					{IVT: 0.5},
					{IVT: 0.500001},
				},
			},
		},
	}

	summary := BuildSummary(parsed, 0.5)

	// A day exactly at the threshold does not count as high.
	assert.Equal(t, 1, summary.HighDays)
	assert.Equal(t, 1, summary.Apps[0].HighDays)
}

func TestMean(t *testing.T) {
	assert.InDelta(t, 0.31, mean([]float64{0.02, 0.6}), 1e-9)
	assert.InDelta(t, 2.0, mean([]float64{1, 2, 3}), 1e-9)
}

func TestMedian(t *testing.T) {
	t.Run("odd count", func(t *testing.T) {
		assert.InDelta(t, 2.0, median([]float64{3, 1, 2}), 1e-9)
	})

	t.Run("even count averages middles", func(t *testing.T) {
		assert.InDelta(t, 2.5, median([]float64{4, 1, 3, 2}), 1e-9)
	})

	t.Run("input order preserved", func(t *testing.T) {
		values := []float64{3, 1, 2}
		median(values)
		assert.Equal(t, []float64{3, 1, 2}, values)
	})
}
