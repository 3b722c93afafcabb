// Package render — PDF renderer.
// Lays out the plain view as a printable document using gofpdf.
// Headings get larger bold type, code fences a monospace block, list
// items a bullet or their number. Inline markers are stripped.
package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/adarshpam3/contentcrafty-sub000/core"
)

// PDFRenderer renders a plain view as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var orderedItemRegex = regexp.MustCompile(`^\d+\.\s`)

// Render converts the plain view into PDF bytes.
func (r *PDFRenderer) Render(view core.PlainView) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if view.Meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(view.Meta.Title), "", "L", false)
		pdf.Ln(4)
	}

	if view.Meta.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+view.Meta.Source), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	lines := strings.Split(view.Text, "\n")
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
			continue
		}

		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}

		if m := headingRegex.FindStringSubmatch(line); m != nil {
			renderHeading(pdf, tr(cleanInlineMarkers(m[2])), len(m[1]))
			continue
		}

		trimmed := strings.TrimSpace(line)
		pdf.SetFont("Helvetica", "", 10)
		switch {
		case strings.HasPrefix(trimmed, "* "):
			pdf.MultiCell(0, 5, tr("• "+cleanInlineMarkers(trimmed[2:])), "", "L", false)
		case orderedItemRegex.MatchString(trimmed):
			pdf.MultiCell(0, 5, tr(cleanInlineMarkers(trimmed)), "", "L", false)
		default:
			pdf.MultiCell(0, 5, tr(cleanInlineMarkers(line)), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13}
	size, ok := sizes[level]
	if !ok {
		size = 11
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

var (
	boldRegex       = regexp.MustCompile(`\*\*([^*]*)\*\*`)
	italicRegex     = regexp.MustCompile(`(^|\W)_([^_]+)_(\W|$)`)
	inlineCodeRegex = regexp.MustCompile("`([^`]+)`")
)

// cleanInlineMarkers strips the plain view's inline markers for PDF output.
func cleanInlineMarkers(text string) string {
	text = boldRegex.ReplaceAllString(text, "$1")
	text = italicRegex.ReplaceAllString(text, "$1$2$3")
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	text = linkRegex.ReplaceAllStringFunc(text, func(s string) string {
		m := linkRegex.FindStringSubmatch(s)
		if m[2] == "" {
			return m[1]
		}
		return m[1] + " (" + m[2] + ")"
	})
	return strings.TrimSpace(text)
}
