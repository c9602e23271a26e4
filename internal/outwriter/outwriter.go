// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/internal/contract"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteDailyMetrics prints parsed daily rows using the configured output format.
func (ow *OutWriter) WriteDailyMetrics(parsed *schema.ParseResult, summary *schema.Summary, cfg *contract.Config, duration time.Duration) error {
	return PrintDailyMetrics(parsed, summary, cfg, duration)
}

// WriteRawText writes the extracted text layer to the configured export file.
func (ow *OutWriter) WriteRawText(text string, cfg *contract.Config) error {
	return PrintRawText(text, cfg)
}

// GetMaxTableNameWidth calculates the maximum width for app names in table
// output based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (#, Day, Traffic, IVT, Label)
	// plus table borders, separators, and padding.
	baseWidth := 48

	// Calculate available space for the app name
	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable name width
		return 12
	}
	if available > 40 {
		// Maximum name width to prevent overly wide tables
		return 40
	}
	return available
}
