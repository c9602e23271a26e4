package cmd

import (
	"github.com/Sudarshanganwani9/Data-analytics-assignment/core"
	"github.com/spf13/cobra"
)

// textCmd dumps the extracted text layer for inspection.
var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Dump the extracted text layer of the source PDF",
	Long: `Extract and print the text layer of the source PDF, exactly as the
parser sees it.

The daily tables are scraped from this text, so when a section parses
strangely this is the first thing to inspect.

Examples:
  # Dump to stdout
  ivtreport text -i "September Traffic.pdf"

  # Save for a bug report
  ivtreport text -i "September Traffic.pdf" --export-file layer.txt`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run:     runExecutor(core.ExecuteText, "Cannot extract text"),
}
