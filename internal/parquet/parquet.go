// Package parquet provides data structures and functions for exporting parsed
// traffic metrics to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/internal/contract"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

// DailyMetricRow represents one parsed day of app traffic in columnar form.
// The layout mirrors schema.DailyMetric plus the derived severity label, so
// exports can be queried without re-deriving thresholds.
type DailyMetricRow struct {
	// App is the application the row belongs to
	App string `parquet:"app,snappy"`

	// Day is the 1-based position within the app series
	Day int32 `parquet:"day,snappy"`

	// Date is the parsed calendar date (nullable, stored as TIMESTAMP)
	Date *time.Time `parquet:"date,optional,snappy"`

	// DayLabel is the raw day label as found in the source text
	DayLabel string `parquet:"day_label,snappy"`

	// Traffic is the total request volume for the day
	Traffic float64 `parquet:"traffic,snappy"`

	// IVT is the invalid-traffic ratio in [0,1]
	IVT float64 `parquet:"ivt,snappy"`

	// Label is the severity label derived from the configured threshold
	Label string `parquet:"label,snappy"`
}

// WriteDailyMetricsParquet writes a slice of DailyMetricRow structs to a Parquet file.
func WriteDailyMetricsParquet(data []DailyMetricRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the DailyMetricRow struct tags
	writer := parquet.NewGenericWriter[DailyMetricRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertDailyMetrics converts schema.DailyMetric rows to DailyMetricRow for
// Parquet export, attaching the severity label for the given threshold.
func ConvertDailyMetrics(rows []schema.DailyMetric, threshold float64) []DailyMetricRow {
	result := make([]DailyMetricRow, len(rows))
	for i, row := range rows {
		var date *time.Time
		if row.HasDate() {
			d := row.Date
			date = &d
		}
		result[i] = DailyMetricRow{
			App:      row.App,
			Day:      int32(row.Day),
			Date:     date,
			DayLabel: row.DayLabel,
			Traffic:  row.Traffic,
			IVT:      row.IVT,
			Label:    contract.GetPlainLabel(row.IVT, threshold),
		}
	}
	return result
}

// SampleDailyMetrics generates sample DailyMetricRow data for demonstration.
func SampleDailyMetrics() []DailyMetricRow {
	day1 := time.Date(2025, time.September, 11, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, time.September, 12, 0, 0, 0, 0, time.UTC)

	return []DailyMetricRow{
		{
			App:      "Sample App",
			Day:      1,
			Date:     &day1,
			DayLabel: "2025-09-11",
			Traffic:  1191603,
			IVT:      0.00427,
			Label:    string(schema.LowSeverity),
		},
		{
			App:      "Sample App",
			Day:      2,
			Date:     &day2,
			DayLabel: "2025-09-12",
			Traffic:  1304981,
			IVT:      0.61,
			Label:    string(schema.CriticalSeverity),
		},
		{
			App:      "Other App",
			Day:      1,
			Date:     nil, // Label-only row - the source carried no parseable date
			DayLabel: "11 Sep to 15 Sep",
			Traffic:  530942,
			IVT:      0,
			Label:    string(schema.LowSeverity),
		},
	}
}
