// Package render draws assembled résumé text into a fresh PDF. The output is
// a de novo rendering, unrelated to the uploaded document's layout.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Letter-page layout in points. The text origin sits near the top margin and
// every input line becomes one output line, unwrapped.
const (
	leftMargin   = 40.0
	topBaseline  = 42.0
	bottomMargin = 40.0
	pageHeight   = 792.0
	fontSize     = 12.0
	leading      = 14.4
)

// PDF renders text into an in-memory PDF, ready to stream.
type PDF struct{}

// Render draws the text line by line, left-aligned, starting a new page
// whenever the vertical cursor would cross the bottom margin. Nothing is ever
// dropped off the page edge.
func (PDF) Render(text string) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetFont("Helvetica", "", fontSize)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, page := range paginate(strings.Split(text, "\n"), topBaseline, pageHeight-bottomMargin, leading) {
		doc.AddPage()
		y := topBaseline
		for _, line := range page {
			doc.Text(leftMargin, y, tr(line))
			y += leading
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// paginate splits lines into pages by walking a vertical cursor from the top
// baseline; a line whose baseline would pass maxY opens a new page.
func paginate(lines []string, topY, maxY, leading float64) [][]string {
	var pages [][]string
	var page []string
	y := topY
	for _, line := range lines {
		if y > maxY && len(page) > 0 {
			pages = append(pages, page)
			page = nil
			y = topY
		}
		page = append(page, line)
		y += leading
	}
	if len(page) > 0 {
		pages = append(pages, page)
	}
	if len(pages) == 0 {
		pages = append(pages, []string{""})
	}
	return pages
}
