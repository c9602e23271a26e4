package core

import (
	"fmt"
	"os"
	"time"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/internal/contract"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

// maxViolationsShown caps how many failing days the check output lists.
const maxViolationsShown = 5

// ExecuteIVTCheck runs the check command for CI/CD gating. It scrapes the
// input, evaluates every parsed day against the IVT threshold, and returns
// a non-zero exit code if any day exceeds it.
func ExecuteIVTCheck(cfg *contract.Config) error {
	start := time.Now()

	parsed, err := runScrapePipeline(cfg, contract.NewPDFExtractor())
	if err != nil {
		return err
	}

	result := BuildCheckResult(parsed, cfg.IVTThreshold)
	printCheckResult(result, time.Since(start))

	if !result.Passed {
		fmt.Printf("%d violation(s) found\n", len(result.Violations))
		os.Exit(1)
	}
	return nil
}

// BuildCheckResult evaluates every parsed day against the threshold.
func BuildCheckResult(parsed *schema.ParseResult, threshold float64) *schema.CheckResult {
	result := &schema.CheckResult{
		Threshold: threshold,
		TotalRows: parsed.TotalRows(),
		TotalApps: len(parsed.Apps),
	}

	first := true
	for i := range parsed.Apps {
		series := &parsed.Apps[i]
		if peak := series.MaxIVT(); first || peak > result.MaxIVT {
			result.MaxIVT = peak
			result.MaxIVTApp = series.App
			first = false
		}
		for j := range series.Metrics {
			m := &series.Metrics[j]
			if m.IVT > threshold {
				result.Violations = append(result.Violations, schema.CheckViolation{
					App:      series.App,
					Day:      m.Day,
					DayLabel: schema.FormatDay(m),
					IVT:      m.IVT,
				})
			}
		}
	}
	result.Passed = len(result.Violations) == 0
	return result
}

// printCheckResult prints the check result in a concise format suitable for CI/CD.
func printCheckResult(result *schema.CheckResult, duration time.Duration) {
	printCheckHeader(result, duration)

	if result.Passed {
		printCheckSuccess(result)
	} else {
		printCheckFailure(result)
	}
}

// printCheckHeader prints the common header information for check results.
func printCheckHeader(result *schema.CheckResult, duration time.Duration) {
	fmt.Println("IVT Threshold Check:")

	// Define labels and values for dynamic padding
	labels := []string{"Threshold:", "Apps:", "Rows:"}
	values := []any{
		fmt.Sprintf("%.2f", result.Threshold),
		result.TotalApps,
		result.TotalRows,
	}

	// Find the longest label for consistent padding
	maxLabelLen := 0
	for _, label := range labels {
		if len(label) > maxLabelLen {
			maxLabelLen = len(label)
		}
	}

	// Print each label-value pair with consistent padding
	for i, label := range labels {
		fmt.Printf("  %-*s %v\n", maxLabelLen+1, label, values[i])
	}
	fmt.Println()

	fmt.Printf("Checked %d rows in %v\n\n", result.TotalRows, duration)
}

// printCheckSuccess prints the success case output.
func printCheckSuccess(result *schema.CheckResult) {
	fmt.Printf("✅ All days passed the IVT threshold\n\n")
	fmt.Printf("Worst day observed: %.4f (%s)\n", result.MaxIVT, result.MaxIVTApp)
}

// printCheckFailure prints the failure case output, worst days first.
func printCheckFailure(result *schema.CheckResult) {
	fmt.Printf("❌ Threshold check failed: %d violation(s) across %d rows\n\n", len(result.Violations), result.TotalRows)

	top := RankViolations(result.Violations, maxViolationsShown)
	for _, v := range top {
		fmt.Printf("  %s  %s  IVT %.4f\n", v.App, v.DayLabel, v.IVT)
	}
	if extra := len(result.Violations) - maxViolationsShown; extra > 0 {
		fmt.Printf("  ... and %d more\n", extra)
	}
}
