package schema

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppSeriesHasDates(t *testing.T) {
	dated := AppSeries{App: "AppA", Metrics: []DailyMetric{
		{Day: 1, DayLabel: "11 Sep"},
		{Day: 2, Date: time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)},
	}}
	assert.True(t, dated.HasDates())

	undated := AppSeries{App: "AppB", Metrics: []DailyMetric{
		{Day: 1, DayLabel: "11 Sep"},
		{Day: 2, DayLabel: "12 Sep"},
	}}
	assert.False(t, undated.HasDates())
}

func TestAppSeriesValues(t *testing.T) {
	series := AppSeries{App: "AppA", Metrics: []DailyMetric{
		{Day: 1, IVT: 0.02},
		{Day: 2, IVT: 0.6},
		{Day: 3, IVT: 0.1},
	}}

	assert.Equal(t, []float64{0.02, 0.6, 0.1}, series.IVTValues())
	assert.Equal(t, 0.6, series.MaxIVT())
}

func TestParseResultAccessors(t *testing.T) {
	result := ParseResult{
		Source: "sample.pdf",
		Apps: []AppSeries{
			{App: "AppA", Metrics: []DailyMetric{{Day: 1}, {Day: 2}}},
			{App: "AppB", Metrics: []DailyMetric{{Day: 1}}},
		},
	}

	assert.Equal(t, 3, result.TotalRows())
	assert.Equal(t, []string{"AppA", "AppB"}, result.AppNames())
	assert.Len(t, result.Rows(), 3)
}

func TestStageErrors(t *testing.T) {
	t.Run("input error unwraps", func(t *testing.T) {
		err := &InputError{Path: "missing.pdf", Err: ErrNoText}
		require.ErrorIs(t, err, ErrNoText)
		assert.Contains(t, err.Error(), "missing.pdf")

		var inputErr *InputError
		require.ErrorAs(t, error(err), &inputErr)
		assert.Equal(t, "missing.pdf", inputErr.Path)
	})

	t.Run("parse error unwraps", func(t *testing.T) {
		err := &ParseError{Source: "sample.pdf", Err: ErrNoSections}
		require.ErrorIs(t, err, ErrNoSections)
		assert.Contains(t, err.Error(), "sample.pdf")
	})

	t.Run("output error unwraps", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := &OutputError{Path: "report.pdf", Err: cause}
		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "report.pdf")
	})
}
