package cmd

import (
	"github.com/Sudarshanganwani9/Data-analytics-assignment/core"
	"github.com/spf13/cobra"
)

// metricsCmd prints the parsed daily rows without rendering a report.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Print the parsed daily rows instead of rendering a report",
	Long: `Scrape the source PDF and print every parsed daily row.

Shows exactly what a report would be built from, including:
- The app each row was attributed to
- The parsed date or raw day label
- Traffic volume and IVT share per day
- The severity label for the configured threshold

Use this to:
- Verify the parse before rendering a report
- Export the scraped numbers for downstream analytics
- Debug sections that yield fewer rows than expected

Examples:
  # Human-readable table on stdout
  ivtreport metrics -i "September Traffic.pdf"

  # Keep the observation summary attached
  ivtreport metrics --summary

  # Machine-readable exports
  ivtreport metrics --format json --export-file rows.json
  ivtreport metrics --format csv --export-file rows.csv
  ivtreport metrics --format parquet --export-file rows.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run:     runExecutor(core.ExecuteMetrics, "Cannot print metrics"),
}
