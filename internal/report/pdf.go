package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/rshade/carbonlens/internal/footprint"
)

// PDF output constants.
const (
	PDFFileName = "carbon_footprint_report.pdf"
	PDFMIMEType = "application/pdf"
)

// Layout in points, measured from the bottom-left of a US Letter page.
const (
	pdfFontFamily = "Helvetica"
	pdfFontSize   = 12
	pdfLeft       = 50.0
	pdfTop        = 750.0
	pdfLineStep   = 20.0

	// pdfBottom is the lowest baseline used before starting a new page.
	pdfBottom = 50.0
)

// PDFLines returns the lines drawn in the PDF in order. The suggestions
// header ends with a colon and an empty suggestion list draws nothing
// beneath it.
func PDFLines(r footprint.Result, suggestions []string) []string {
	lines := make([]string, 0, len(suggestions)+6) //nolint:mnd // title, four values, header
	lines = append(lines, Title)
	lines = append(lines, FootprintLines(r)...)
	lines = append(lines, SuggestionsHeader+":")
	for _, s := range suggestions {
		lines = append(lines, suggestionPrefix+s)
	}
	return lines
}

// RenderPDF draws the report onto US Letter pages and returns the document
// bytes. Lines step down 20pt from y=750; a line that would fall below the
// bottom margin starts a new page.
func RenderPDF(r footprint.Result, suggestions []string) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle(Title, false)
	pdf.SetCreator("carbonlens", false)
	pdf.SetAutoPageBreak(false, 0)

	_, pageHeight := pdf.GetPageSize()

	newPage := func() {
		pdf.AddPage()
		pdf.SetFont(pdfFontFamily, "", pdfFontSize)
	}

	newPage()
	y := pdfTop
	for _, line := range PDFLines(r, suggestions) {
		if y < pdfBottom {
			newPage()
			y = pdfTop
		}
		// fpdf measures y from the top edge.
		pdf.Text(pdfLeft, pageHeight-y, line)
		y -= pdfLineStep
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pageCount returns how many pages RenderPDF produces for n suggestions.
func pageCount(n int) int {
	perPage := int((pdfTop-pdfBottom)/pdfLineStep) + 1
	total := n + 6 //nolint:mnd // title, four values, header
	return (total + perPage - 1) / perPage
}
