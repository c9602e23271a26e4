package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/internal/contract"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

func metricsFixture() ([]schema.DailyMetric, *schema.Summary) {
	day := func(d int) time.Time {
		return time.Date(2025, time.September, d, 0, 0, 0, 0, time.UTC)
	}
	rows := []schema.DailyMetric{
		{App: "AppOne", Day: 1, Date: day(1), DayLabel: "2025-09-01", Traffic: 1000, IVT: 0.02},
		{App: "AppOne", Day: 2, Date: day(2), DayLabel: "2025-09-02", Traffic: 1100, IVT: 0.6},
		{App: "AppTwo", Day: 1, DayLabel: "11 Sep to 15 Sep", Traffic: 530942, IVT: 0},
	}
	summary := &schema.Summary{
		Threshold: 0.5,
		Apps: []schema.AppSummary{
			{App: "AppOne", Rows: 2, MeanIVT: 0.31, MedianIVT: 0.31, MinIVT: 0.02, MaxIVT: 0.6, Traffic: 2100, HighDays: 1},
			{App: "AppTwo", Rows: 1, AllZero: true},
		},
		TotalRows:   3,
		HighDays:    1,
		FlaggedApps: []string{"AppOne"},
		AllZeroApps: []string{"AppTwo"},
	}
	return rows, summary
}

func metricsConfig() *contract.Config {
	return &contract.Config{
		Format:       schema.TextOut,
		Precision:    4,
		IVTThreshold: 0.5,
		Width:        120,
		Workers:      1,
	}
}

func TestWriteMetricTable(t *testing.T) {
	rows, summary := metricsFixture()
	cfg := metricsConfig()
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	duration := 150 * time.Millisecond
	err := writeMetricTable(rows, summary, cfg, fmtFloat, duration, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "AppOne")
	assert.Contains(t, output, "AppTwo")
	assert.Contains(t, output, "2025-09-01")
	assert.Contains(t, output, "11 Sep to 15 Sep")
	assert.Contains(t, output, "0.6000")
	assert.Contains(t, output, "530942")
	assert.Contains(t, output, "Critical")
	assert.Contains(t, output, "Low")
	assert.Contains(t, output, "Showing 3 rows across 2 app(s) (days above 0.50: 1)")
	assert.Contains(t, output, "Scrape completed in 150ms")
	assert.NotContains(t, output, "Automated Observations")
}

func TestWriteMetricTableWithSummary(t *testing.T) {
	rows, summary := metricsFixture()
	cfg := metricsConfig()
	cfg.WithSummary = true
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeMetricTable(rows, summary, cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Automated Observations & Summary")
	assert.Contains(t, output, "General recommendations:")
	assert.Contains(t, output, "1 day(s) with IVT above 0.50")
}

func TestWriteCSVResultsForMetrics(t *testing.T) {
	rows, _ := metricsFixture()
	cfg := metricsConfig()
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForMetrics(w, rows, cfg, fmtFloat, intFmt)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "1,AppOne,1,2025-09-01,2025-09-01,1000,0.0200,Low", lines[0])
	assert.Contains(t, lines[1], "0.6000")
	assert.Contains(t, lines[1], "Critical")

	// Undated rows leave the date column empty but keep the raw label.
	assert.Equal(t, "3,AppTwo,1,,11 Sep to 15 Sep,530942,0.0000,Low", lines[2])
}

func TestWriteCSVResultsEmptyRows(t *testing.T) {
	cfg := metricsConfig()
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForMetrics(w, nil, cfg, fmtFloat, intFmt)
	require.NoError(t, err)
	w.Flush()

	assert.Empty(t, strings.TrimSpace(buf.String()))
}

func TestWriteJSONResults(t *testing.T) {
	rows, summary := metricsFixture()
	cfg := metricsConfig()

	var buf bytes.Buffer
	err := writeJSONResultsForMetrics(&buf, rows, summary, cfg)
	require.NoError(t, err)

	// Parse the JSON to verify structure
	var result []map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, float64(1), result[0]["rank"])
	assert.Equal(t, "AppOne", result[0]["app"])
	assert.Equal(t, 0.02, result[0]["ivt"])
	assert.Equal(t, "Low", result[0]["label"])
	assert.Equal(t, "Critical", result[1]["label"])

	// Second row ranks after the first
	assert.Equal(t, float64(2), result[1]["rank"])

	// Undated rows omit the date field entirely
	_, hasDate := result[2]["date"]
	assert.False(t, hasDate)
}

func TestWriteJSONResultsWithSummary(t *testing.T) {
	rows, summary := metricsFixture()
	cfg := metricsConfig()
	cfg.WithSummary = true

	var buf bytes.Buffer
	err := writeJSONResultsForMetrics(&buf, rows, summary, cfg)
	require.NoError(t, err)

	var result map[string]any
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	wrapped, ok := result["rows"].([]any)
	require.True(t, ok)
	assert.Len(t, wrapped, 3)

	summaryOut, ok := result["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.5, summaryOut["threshold"])
	assert.Equal(t, float64(3), summaryOut["total_rows"])
}

func TestPrintDailyMetricsCSVExport(t *testing.T) {
	rows, summary := metricsFixture()
	parsed := &schema.ParseResult{
		Source: "traffic.pdf",
		Apps: []schema.AppSeries{
			{App: "AppOne", Metrics: rows[:2]},
			{App: "AppTwo", Metrics: rows[2:]},
		},
	}
	cfg := metricsConfig()
	cfg.Format = schema.CSVOut
	cfg.ExportFile = filepath.Join(t.TempDir(), "metrics.csv")

	err := PrintDailyMetrics(parsed, summary, cfg, time.Second)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.ExportFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4) // header + 3 rows
	assert.Equal(t, "rank,app,day,date,day_label,traffic,ivt,label", lines[0])
}

func TestPrintDailyMetricsParquetExport(t *testing.T) {
	rows, summary := metricsFixture()
	parsed := &schema.ParseResult{
		Source: "traffic.pdf",
		Apps:   []schema.AppSeries{{App: "AppOne", Metrics: rows}},
	}
	cfg := metricsConfig()
	cfg.Format = schema.ParquetOut
	cfg.ExportFile = filepath.Join(t.TempDir(), "metrics.parquet")

	err := PrintDailyMetrics(parsed, summary, cfg, time.Second)
	require.NoError(t, err)

	info, err := os.Stat(cfg.ExportFile)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestPrintDailyMetricsParquetRequiresExportFile(t *testing.T) {
	rows, summary := metricsFixture()
	parsed := &schema.ParseResult{
		Source: "traffic.pdf",
		Apps:   []schema.AppSeries{{App: "AppOne", Metrics: rows}},
	}
	cfg := metricsConfig()
	cfg.Format = schema.ParquetOut
	cfg.ExportFile = ""

	err := PrintDailyMetrics(parsed, summary, cfg, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parquet output requires --export-file")
}

func TestPrintRawText(t *testing.T) {
	cfg := metricsConfig()
	cfg.ExportFile = filepath.Join(t.TempDir(), "layer.txt")
	text := "Total Data\nDaily Data\n2025-09-01 1000 0.02\n"

	err := PrintRawText(text, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.ExportFile)
	require.NoError(t, err)
	assert.Equal(t, text, string(data))
}
