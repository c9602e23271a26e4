package contract

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

func TestNewPDFExtractor(t *testing.T) {
	extractor := NewPDFExtractor()
	assert.NotNil(t, extractor)
	assert.Implements(t, (*DocExtractor)(nil), extractor)
}

func TestExtractMissingFile(t *testing.T) {
	extractor := NewPDFExtractor()

	text, err := extractor.Extract(filepath.Join(t.TempDir(), "does_not_exist.pdf"))
	require.Error(t, err)
	assert.Empty(t, text)

	var inputErr *schema.InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Contains(t, inputErr.Path, "does_not_exist.pdf")
}

func TestExtractNotAPDF(t *testing.T) {
	junkFile := filepath.Join(t.TempDir(), "junk.pdf")
	require.NoError(t, os.WriteFile(junkFile, []byte("plain text, not a document"), 0o644))

	extractor := NewPDFExtractor()

	_, err := extractor.Extract(junkFile)
	require.Error(t, err)

	var inputErr *schema.InputError
	assert.True(t, errors.As(err, &inputErr))
}

// writeTwoPagePDF assembles a minimal two-page PDF by hand so the second
// page's content stream can hold arbitrary, possibly malformed operators.
func writeTwoPagePDF(t *testing.T, secondStream string) string {
	t.Helper()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 6 0 R >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 7 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		contentStream("BT /F1 12 Tf 72 720 Td (Daily) Tj ET"),
		contentStream(secondStream),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, body := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	path := filepath.Join(t.TempDir(), "fixture.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func contentStream(ops string) string {
	return fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(ops), ops)
}

func TestExtractReadsAllPages(t *testing.T) {
	path := writeTwoPagePDF(t, "BT /F1 12 Tf 72 720 Td (Hourly) Tj ET")

	text, err := NewPDFExtractor().Extract(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Daily")
	assert.Contains(t, text, "Hourly")
}

func TestExtractSkipsBadPage(t *testing.T) {
	// A bare Tj with nothing on the operand stack panics the decoder. The
	// bad page must vanish without taking the good page's text with it.
	path := writeTwoPagePDF(t, "Tj")

	text, err := NewPDFExtractor().Extract(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Daily")
}

// glyphRun builds one fragment per glyph, each advanced by its own width,
// the way the decoder reports text from fonts that carry width tables.
func glyphRun(x, size float64, s string) []pdf.Text {
	parts := make([]pdf.Text, 0, len(s))
	for _, ch := range s {
		w := 0.5 * size
		parts = append(parts, pdf.Text{FontSize: size, X: x, W: w, S: string(ch)})
		x += w
	}
	return parts
}

func TestJoinRowGlyphRuns(t *testing.T) {
	row := glyphRun(40, 12, "2025-09-01")
	row = append(row, glyphRun(200, 12, "1000")...)
	row = append(row, glyphRun(300, 12, "0.02")...)

	assert.Equal(t, "2025-09-01 1000 0.02", joinRow(row))
}

func TestJoinRowKerning(t *testing.T) {
	// Sub-threshold gaps come from kerning adjustments, not spaces.
	row := glyphRun(40, 12, "Traf")
	last := row[len(row)-1]
	row = append(row, glyphRun(last.X+last.W+0.05*12, 12, "fic")...)

	assert.Equal(t, "Traffic", joinRow(row))
}

func TestJoinRowWholeRuns(t *testing.T) {
	// Some pages decode as whole runs instead of single glyphs.
	row := []pdf.Text{
		{FontSize: 10, X: 40, W: 26, S: "Total"},
		{FontSize: 10, X: 90, W: 24, S: "Data"},
	}

	assert.Equal(t, "Total Data", joinRow(row))
}

func TestJoinRowMissingWidths(t *testing.T) {
	// Core fonts without width tables report W == 0, which pins every glyph
	// of a run to the run's X. Only explicit jumps between runs then read
	// as word breaks.
	row := []pdf.Text{
		{FontSize: 12, X: 40, S: "8"},
		{FontSize: 12, X: 96, S: "S"},
		{FontSize: 12, X: 96, S: "e"},
		{FontSize: 12, X: 96, S: "p"},
	}

	assert.Equal(t, "8 Sep", joinRow(row))
}

func TestJoinRowEmpty(t *testing.T) {
	assert.Equal(t, "", joinRow(nil))
}
