// Package core has core logic for scraping traffic metrics and building reports.
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/internal/contract"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/internal/outwriter"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/internal/report"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(cfg *contract.Config) error

// ExecuteReport runs the full conversion pipeline: extract the text layer,
// scrape per-app metrics, render the chart report, and write it out.
// It serves as the main entry point for the root command.
func ExecuteReport(cfg *contract.Config) error {
	return executeReportWith(cfg, contract.NewPDFExtractor())
}

// executeReportWith is ExecuteReport with a pluggable extractor. The report
// renders fully in memory first; the output file is only touched after a
// successful render, so failed runs never leave a partial report behind.
func executeReportWith(cfg *contract.Config, extractor contract.DocExtractor) error {
	start := time.Now()

	parsed, err := runScrapePipeline(cfg, extractor)
	if err != nil {
		return err
	}
	summary := BuildSummary(parsed, cfg.IVTThreshold)

	doc := report.NewDocument(cfg, parsed, summary, sourceTimestamp(cfg.InputFile))
	data, err := doc.Render()
	if err != nil {
		return err
	}
	if err := report.WriteFile(cfg.OutputFile, data); err != nil {
		return err
	}

	if !cfg.Quiet {
		if cfg.UseEmojis {
			fmt.Printf("📄 Saved report to %s in %v\n", cfg.OutputFile, time.Since(start))
		} else {
			fmt.Printf("Saved report to %s in %v\n", cfg.OutputFile, time.Since(start))
		}
	}
	return nil
}

// ExecuteMetrics scrapes the input and prints the parsed rows in the
// configured format, optionally followed by the observation summary.
// It serves as the main entry point for the 'metrics' command.
func ExecuteMetrics(cfg *contract.Config) error {
	return executeMetricsWith(cfg, contract.NewPDFExtractor())
}

func executeMetricsWith(cfg *contract.Config, extractor contract.DocExtractor) error {
	start := time.Now()

	parsed, err := runScrapePipeline(cfg, extractor)
	if err != nil {
		return err
	}
	summary := BuildSummary(parsed, cfg.IVTThreshold)
	duration := time.Since(start)

	return outwriter.NewOutWriter().WriteDailyMetrics(parsed, summary, cfg, duration)
}

// ExecuteText extracts the text layer and writes it to the export file, or
// stdout when none is set. This is the debugging surface for the scraper.
func ExecuteText(cfg *contract.Config) error {
	return executeTextWith(cfg, contract.NewPDFExtractor())
}

func executeTextWith(cfg *contract.Config, extractor contract.DocExtractor) error {
	text, err := extractor.Extract(cfg.InputFile)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return &schema.InputError{Path: cfg.InputFile, Err: schema.ErrNoText}
	}
	return outwriter.NewOutWriter().WriteRawText(text, cfg)
}

// runScrapePipeline extracts the text layer and scrapes it into per-app
// series. Documents with an empty text layer fail as input errors before
// any parsing runs.
func runScrapePipeline(cfg *contract.Config, extractor contract.DocExtractor) (*schema.ParseResult, error) {
	text, err := extractor.Extract(cfg.InputFile)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, &schema.InputError{Path: cfg.InputFile, Err: schema.ErrNoText}
	}

	parsed, err := ScrapeMetrics(filepath.Base(cfg.InputFile), text)
	if err != nil {
		return nil, err
	}
	logParseProgress(cfg, parsed)
	return parsed, nil
}

// logParseProgress prints the section count and per-app row counts.
func logParseProgress(cfg *contract.Config, parsed *schema.ParseResult) {
	if cfg.Quiet {
		return
	}
	if cfg.UseEmojis {
		fmt.Printf("🔍 Found %d app section(s) in %s\n", len(parsed.Apps), parsed.Source)
	} else {
		fmt.Printf("Found %d app section(s) in %s\n", len(parsed.Apps), parsed.Source)
	}
	for i := range parsed.Apps {
		fmt.Printf("  %s: %d parsed row(s)\n", parsed.Apps[i].App, len(parsed.Apps[i].Metrics))
	}
}

// sourceTimestamp derives the report's generation timestamp from the input
// file so repeated runs over the same input produce identical bytes.
func sourceTimestamp(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return info.ModTime().UTC()
}
