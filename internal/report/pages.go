package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// reportTitle is the heading shown on the title page and in the PDF metadata.
const reportTitle = "Data Analytics Assignment — Automated Report"

// summaryChunkSize is how many observation lines fit on one page.
const summaryChunkSize = 45

// Page layout in millimeters (A4 portrait).
const (
	pageMargin   = 10
	chartY       = 40
	chartWidthMM = 190
)

// addTitlePage lays out the report heading, source line, table of contents
// and generation timestamp.
func addTitlePage(pdf *fpdf.Fpdf, tr func(string) string, source string, generated string) {
	pdf.AddPage()

	pdf.SetY(60)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(reportTitle), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Source: %s", source)), "", 1, "C", false, 0, "")

	pdf.Ln(24)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Contents:", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, "1. Per-app IVT charts\n2. Combined IVT trends across apps\n3. Observations & Recommendations", "", "L", false)

	pdf.Ln(40)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Generated: %s", generated)), "", 1, "L", false, 0, "")
}

// addChartPage embeds one rendered chart PNG on its own page.
func addChartPage(pdf *fpdf.Fpdf, name string, png []byte) {
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, pageMargin, chartY, chartWidthMM, 0, false, opts, 0, "")
}

// addObservationPages renders the text summary in monospace, split across
// pages in fixed-size chunks.
func addObservationPages(pdf *fpdf.Fpdf, tr func(string) string, lines []string) {
	for start := 0; start < len(lines); start += summaryChunkSize {
		end := min(start+summaryChunkSize, len(lines))

		pdf.AddPage()
		pdf.SetFont("Courier", "", 9)
		pdf.SetXY(pageMargin, 15)
		pdf.MultiCell(0, 4.2, tr(strings.Join(lines[start:end], "\n")), "", "L", false)
	}
}

// newPDF builds the base document with deterministic metadata: both
// timestamps come from the caller, never the wall clock.
func newPDF(generatedAt time.Time) (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(reportTitle, true)
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)
	return pdf, tr
}
