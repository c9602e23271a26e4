// Package report renders the multi-page PDF report from parsed metrics.
package report

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/internal/contract"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

// Document carries everything the renderer needs to produce one report.
type Document struct {
	cfg         *contract.Config
	parsed      *schema.ParseResult
	summary     *schema.Summary
	generatedAt time.Time
}

// NewDocument assembles a renderable document from the pipeline outputs.
// The generation timestamp must be derived from the input, not the clock,
// so repeated runs produce identical bytes.
func NewDocument(cfg *contract.Config, parsed *schema.ParseResult, summary *schema.Summary, generatedAt time.Time) *Document {
	return &Document{cfg: cfg, parsed: parsed, summary: summary, generatedAt: generatedAt}
}

// Render produces the complete PDF in memory: title page, one chart per app,
// the combined overlay chart, and the observation pages. Failures surface as
// *schema.OutputError and leave no file behind.
func (d *Document) Render() ([]byte, error) {
	appCharts, err := renderAppCharts(d.parsed.Apps, d.cfg.Workers)
	if err != nil {
		return nil, &schema.OutputError{Path: d.cfg.OutputFile, Err: err}
	}
	combined, err := renderCombinedChart(d.parsed.Apps)
	if err != nil {
		return nil, &schema.OutputError{Path: d.cfg.OutputFile, Err: err}
	}

	pdf, tr := newPDF(d.generatedAt)
	addTitlePage(pdf, tr, d.parsed.Source, d.generatedAt.Format(contract.DateTimeFormat))
	for i, png := range appCharts {
		addChartPage(pdf, fmt.Sprintf("app-chart-%d", i+1), png)
	}
	addChartPage(pdf, "combined-chart", combined)
	addObservationPages(pdf, tr, d.summary.ObservationLines())

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &schema.OutputError{Path: d.cfg.OutputFile, Err: err}
	}
	return buf.Bytes(), nil
}

// WriteFile writes a rendered report to disk in one shot.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &schema.OutputError{Path: path, Err: err}
	}
	return nil
}
