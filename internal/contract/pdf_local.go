package contract

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
	"github.com/ledongthuc/pdf"
)

// rowYTolerance groups text fragments whose baselines differ by fewer points
// than this into the same visual row.
const rowYTolerance = 2.0

// wordGapFactor is the horizontal gap, in em units of the current font size,
// beyond which two neighboring fragments belong to different words. The
// decoder drops space glyphs, so word boundaries only survive as gaps.
const wordGapFactor = 0.15

type pdfExtractor struct{}

// NewPDFExtractor returns a DocExtractor backed by ledongthuc/pdf.
func NewPDFExtractor() DocExtractor {
	return &pdfExtractor{}
}

// Extract reads every page and reassembles text fragments into visual rows,
// top to bottom. The decoder panics on some malformed content streams; a page
// whose decode panics is skipped with a warning, so one bad page never throws
// away the rest of the document. Only whole-document failures abort.
func (e *pdfExtractor) Extract(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &schema.InputError{Path: path, Err: fmt.Errorf("open pdf: %w", err)}
	}
	defer func() { _ = f.Close() }()

	return readPages(reader), nil
}

// readPages walks every page of the document and joins their rows,
// separating pages with a blank line. Each page decodes behind its own
// recover: a panicking page contributes nothing.
func readPages(reader *pdf.Reader) string {
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		lines, err := decodePage(reader, i)
		if err != nil {
			LogWarn(fmt.Sprintf("skipping page %d", i), err)
			continue
		}
		for _, line := range lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// decodePage extracts one page's lines, converting decoder panics into an
// error for that page alone.
func decodePage(reader *pdf.Reader, num int) (lines []string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			lines, err = nil, fmt.Errorf("decode pdf: %v", recovered)
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return nil, nil
	}
	return pageLines(page), nil
}

// textRow collects the fragments sharing one baseline.
type textRow struct {
	y     float64
	parts []pdf.Text
}

// pageLines turns a page's text fragments back into lines. PDF coordinates
// have their origin at the bottom left, so rows sort by descending Y and
// fragments within a row by ascending X. The decoder usually emits one
// fragment per glyph, so each row is rebuilt glyph by glyph.
func pageLines(page pdf.Page) []string {
	var rows []*textRow
	for _, t := range page.Content().Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		placed := false
		for _, row := range rows {
			if math.Abs(row.y-t.Y) < rowYTolerance {
				row.parts = append(row.parts, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, &textRow{y: t.Y, parts: []pdf.Text{t}})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		sort.SliceStable(row.parts, func(i, j int) bool { return row.parts[i].X < row.parts[j].X })
		if line := joinRow(row.parts); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// joinRow concatenates one row's fragments, inserting a space wherever the
// horizontal gap between neighbors is too wide to sit inside a word.
func joinRow(parts []pdf.Text) string {
	var sb strings.Builder
	for i, t := range parts {
		if i > 0 {
			prev := parts[i-1]
			if t.X-(prev.X+prev.W) > wordGapFactor*prev.FontSize {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(t.S)
	}
	return strings.TrimSpace(sb.String())
}
