// Package main provides a performance benchmarking tool for the ivtreport CLI.
// It measures conversion times across synthetic source documents of different
// sizes, running each stage multiple times, treating the first successful run
// as cold and averaging the rest as warm, generating CSV output for
// performance analysis and documentation.
//
// Prerequisites:
// - a writable working directory for generated fixtures and reports
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where fixtures and reports are written
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/core"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/internal/contract"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

// BenchmarkResult holds the result of one stage on one document size.
type BenchmarkResult struct {
	Document string
	Stage    string
	Rows     int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir string
	Runs    int
	Workers int
	Sizes   []DocumentSize
}

// DocumentSize describes one synthetic source document.
type DocumentSize struct {
	Name string
	Apps int
	Days int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: os.Args[1],
		Runs:    4,
		Workers: 4,
		Sizes: []DocumentSize{
			{Name: "small", Apps: 3, Days: 14},
			{Name: "medium", Apps: 10, Days: 60},
			{Name: "large", Apps: 40, Days: 180},
		},
	}

	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// runBenchmarks executes all benchmark stages across configured document sizes
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d sizes, %d runs each, %d workers\n",
		len(config.Sizes), config.Runs, config.Workers)

	for _, size := range config.Sizes {
		fmt.Printf("Benchmarking %s (%d apps x %d days)\n", size.Name, size.Apps, size.Days)

		source := filepath.Join(config.WorkDir, fmt.Sprintf("source_%s.pdf", size.Name))
		if err := makeSourcePDF(source, size.Apps, size.Days); err != nil {
			return nil, fmt.Errorf("generate %s fixture: %w", size.Name, err)
		}

		rows := size.Apps * size.Days

		// Text extraction only
		extract := func(_ int) error {
			_, err := contract.NewPDFExtractor().Extract(source)
			return err
		}
		results = append(results, runBenchmarkSuite(config, size.Name, "extract", rows, extract))

		// Full report conversion
		report := func(run int) error {
			cfg := benchConfig(config, source)
			cfg.OutputFile = filepath.Join(config.WorkDir, fmt.Sprintf("report_%s_%d.pdf", size.Name, run))
			return core.ExecuteReport(cfg)
		}
		results = append(results, runBenchmarkSuite(config, size.Name, "report", rows, report))

		// Metrics CSV export
		metrics := func(run int) error {
			cfg := benchConfig(config, source)
			cfg.Format = schema.CSVOut
			cfg.ExportFile = filepath.Join(config.WorkDir, fmt.Sprintf("metrics_%s_%d.csv", size.Name, run))
			return core.ExecuteMetrics(cfg)
		}
		results = append(results, runBenchmarkSuite(config, size.Name, "metrics", rows, metrics))
	}

	return results, nil
}

// benchConfig builds the shared conversion config for one source document.
func benchConfig(config BenchmarkConfig, source string) *contract.Config {
	return &contract.Config{
		InputFile:    source,
		Format:       schema.TextOut,
		IVTThreshold: schema.DefaultIVTThreshold,
		Precision:    contract.DefaultPrecision,
		Workers:      config.Workers,
		Quiet:        true,
	}
}

// runBenchmarkSuite runs one stage several times and splits cold and warm timings
func runBenchmarkSuite(config BenchmarkConfig, document, stage string, rows int, fn func(run int) error) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", stage, document)

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()
		if err := fn(run); err != nil {
			fmt.Printf("  run %d failed: %v\n", run, err)
			continue
		}
		times = append(times, time.Since(start).Seconds())
	}

	coldTime := "FAILED"
	if len(times) > 0 {
		coldTime = fmt.Sprintf("%.3fs", times[0])
	}

	warmTime := "FAILED"
	if len(times) > 1 {
		var sum float64
		for _, t := range times[1:] {
			sum += t
		}
		warmTime = fmt.Sprintf("%.3fs", sum/float64(len(times)-1))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTime, warmTime)

	return BenchmarkResult{
		Document: document,
		Stage:    stage,
		Rows:     rows,
		ColdTime: coldTime,
		WarmTime: warmTime,
	}
}

// makeSourcePDF renders a synthetic source report with the given number of
// app sections and daily rows per app. Every word is placed at its own
// horizontal position so the extractor can recover word boundaries.
func makeSourcePDF(path string, apps, days int) error {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)

	y := 72.0
	row := func(tokens ...string) {
		if y > 770 {
			doc.AddPage()
			y = 72.0
		}
		x := 72.0
		for _, token := range tokens {
			doc.Text(x, y, token)
			x += 80
		}
		y += 16
	}

	row("Synthetic", "Traffic", "Report")
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	for a := 1; a <= apps; a++ {
		row(fmt.Sprintf("App%03d", a))
		row("Total", "Data")
		row("Daily", "Data")
		for d := 0; d < days; d++ {
			ivt := float64((a*7+d*13)%100) / 1000
			if (a+d)%29 == 0 {
				ivt = 0.65
			}
			row(
				start.AddDate(0, 0, d).Format("2006-01-02"),
				strconv.Itoa(100000+d*37+a),
				fmt.Sprintf("%.4f", ivt),
			)
		}
		row("Hourly", "Data")
		row("0:00:00", "100", "0.001")
	}

	return doc.OutputFileAndClose(path)
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/ivtreport_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"doc", "stage", "rows", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		record := []string{result.Document, result.Stage, strconv.Itoa(result.Rows), result.ColdTime, result.WarmTime}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printStageSummary(results, "extract", "Text Extraction:")
	printStageSummary(results, "report", "Report Conversion:")
	printStageSummary(results, "metrics", "Metrics Export:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printStageSummary displays results for a specific stage
func printStageSummary(results []BenchmarkResult, stage, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Stage == stage {
			fmt.Printf("  %-8s (%6d rows): Cold: %s, Warm: %s\n",
				result.Document, result.Rows, result.ColdTime, result.WarmTime)
		}
	}
}
