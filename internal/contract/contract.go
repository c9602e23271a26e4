// Package contract provides interfaces and shared utilities for internal architecture.
package contract

// DocExtractor pulls the text layer out of a source report.
// This allows the scrape and pipeline logic to be tested without PDF fixtures.
type DocExtractor interface {
	// Extract returns the document text with one line per visual row,
	// pages separated by blank lines. Failures surface as *schema.InputError.
	Extract(path string) (string, error)
}
