package cmd

import (
	"github.com/Sudarshanganwani9/Data-analytics-assignment/core"
	"github.com/spf13/cobra"
)

// checkCmd focused on CI/CD policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Enforce the IVT threshold for CI/CD pipelines (fails build on violations)",
	Long: `Scrape the source PDF and fail with a non-zero exit code when any parsed
day carries an IVT share above the threshold.

Designed for CI/CD integration - no report is rendered, only the parsed days
are evaluated and the worst offenders listed.

Use cases:
- Block a release when invalid traffic spikes
- Watch a recurring traffic export for regressions
- Enforce traffic quality standards automatically

Examples:
  # Gate on the default threshold
  ivtreport check -i "September Traffic.pdf"

  # Stricter gate for a sensitive campaign
  ivtreport check -i "September Traffic.pdf" --ivt-threshold 0.1`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	// Violation exit code handling is done in ExecuteIVTCheck.
	Run: runExecutor(core.ExecuteIVTCheck, "Threshold check failed"),
}
