package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/internal/contract"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/internal/parquet"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

// PrintDailyMetrics outputs the parsed rows, dispatching based on the output format configured.
func PrintDailyMetrics(parsed *schema.ParseResult, summary *schema.Summary, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	rows := parsed.Rows()

	// Dispatcher: Handle different output formats
	switch cfg.Format {
	case schema.JSONOut:
		if err := writeMetricJSONResults(rows, summary, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeMetricCSVResults(rows, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeMetricParquetResults(rows, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.ExportFile, func(w io.Writer) error {
			return writeMetricTable(rows, summary, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// PrintRawText writes the extracted text layer, to stdout or the export file.
func PrintRawText(text string, cfg *contract.Config) error {
	return writeWithFile(cfg.ExportFile, func(w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	}, "Wrote text")
}

// writeMetricTable generates and writes the human-readable table.
func writeMetricTable(rows []schema.DailyMetric, summary *schema.Summary, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"#", "App", "Day", "Traffic", "IVT", "Label"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}
	nameWidth := GetMaxTableNameWidth(cfg)

	var data [][]string
	for i := range rows {
		m := &rows[i]
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(m.App, nameWidth),
			schema.FormatDay(m),
			fmt.Sprintf("%.0f", m.Traffic),
			fmtFloat(m.IVT),
			label(m.IVT, summary.Threshold),
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d rows across %d app(s) (days above %.2f: %d)\n", summary.TotalRows, len(summary.Apps), summary.Threshold, summary.HighDays); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scrape completed in %v\n", duration); err != nil {
		return err
	}

	if cfg.WithSummary {
		if _, err := fmt.Fprintf(writer, "\n%s\n", strings.Join(summary.ObservationLines(), "\n")); err != nil {
			return err
		}
	}
	return nil
}

// writeMetricCSVResults handles opening the file and calling the CSV writer.
func writeMetricCSVResults(rows []schema.DailyMetric, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.ExportFile, func(w io.Writer) error {
		header := []string{
			"rank",
			"app",
			"day",
			"date",
			"day_label",
			"traffic",
			"ivt",
			"label",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForMetrics(csvWriter, rows, cfg, fmtFloat, intFmt)
		})
	}, "Wrote CSV")
}

// writeCSVResultsForMetrics writes the parsed rows in CSV format.
func writeCSVResultsForMetrics(w *csv.Writer, rows []schema.DailyMetric, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	for i := range rows {
		m := &rows[i]
		date := ""
		if m.HasDate() {
			date = m.Date.Format(time.DateOnly)
		}
		rec := []string{
			strconv.Itoa(i + 1),
			m.App,
			fmt.Sprintf(intFmt, m.Day),
			date,
			m.DayLabel,
			fmt.Sprintf("%.0f", m.Traffic),
			fmtFloat(m.IVT),
			contract.GetPlainLabel(m.IVT, cfg.IVTThreshold),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeMetricJSONResults handles opening the file and calling the JSON writer.
func writeMetricJSONResults(rows []schema.DailyMetric, summary *schema.Summary, cfg *contract.Config) error {
	return writeWithFile(cfg.ExportFile, func(w io.Writer) error {
		return writeJSONResultsForMetrics(w, rows, summary, cfg)
	}, "Wrote JSON")
}

// writeJSONResultsForMetrics writes the parsed rows in JSON format. With the
// summary flag set the rows are wrapped together with the aggregate figures.
func writeJSONResultsForMetrics(w io.Writer, rows []schema.DailyMetric, summary *schema.Summary, cfg *contract.Config) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONDailyMetric struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.DailyMetric
	}

	output := make([]JSONDailyMetric, len(rows))
	for i, m := range rows {
		output[i] = JSONDailyMetric{
			Rank:        i + 1,
			Label:       contract.GetPlainLabel(m.IVT, cfg.IVTThreshold),
			DailyMetric: m,
		}
	}

	// 2. Use the generic JSON writer
	if cfg.WithSummary {
		return writeJSON(w, struct {
			Rows    []JSONDailyMetric `json:"rows"`
			Summary *schema.Summary   `json:"summary"`
		}{Rows: output, Summary: summary})
	}
	return writeJSON(w, output)
}

// writeMetricParquetResults converts and writes the parsed rows as Parquet.
// Parquet is a binary format, so it always goes to the export file.
func writeMetricParquetResults(rows []schema.DailyMetric, cfg *contract.Config) error {
	if cfg.ExportFile == "" {
		return fmt.Errorf("parquet output requires --export-file")
	}

	data := parquet.ConvertDailyMetrics(rows, cfg.IVTThreshold)
	if err := parquet.WriteDailyMetricsParquet(data, cfg.ExportFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.ExportFile)
	return nil
}
