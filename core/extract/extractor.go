// Package extract implements the Extractor interface.
// It prepares markup for conversion by:
//  1. Removing elements that carry no readable text (scripts, media)
//  2. Optionally removing page chrome (nav, header, footer, sidebars, forms)
//  3. Keeping only the best content container (<main>, <article>, or <body>)
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are always removed. Their text content would otherwise
// leak into the plain view as script source or fallback text.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"img", "picture", "source",
	"iframe", "object", "embed", "video", "audio",
	"svg", "canvas",
}

// chromeSelectors are site furniture around a fetched page's content,
// including search boxes and newsletter forms.
var chromeSelectors = []string{
	"nav", "footer", "header", "aside",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
	"form", "button", "input", "select", "textarea",
}

// Sanitizer strips noise from markup and returns the main content fragment.
type Sanitizer struct {
	StripChrome bool
}

// New creates a Sanitizer. With stripChrome set, navigation and other page
// furniture is removed too, which suits fetched pages but not article
// bodies that legitimately use <header>.
func New(stripChrome bool) *Sanitizer {
	return &Sanitizer{StripChrome: stripChrome}
}

// Extract takes a markup document or fragment and returns the inner markup
// of its main content container.
func (s *Sanitizer) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}
	if s.StripChrome {
		for _, sel := range chromeSelectors {
			doc.Find(sel).Remove()
		}
	}

	// <main> is the most semantically correct, then <article>, then <body>.
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	return strings.TrimSpace(result), nil
}

// Title returns the document <title>, or the first h1-h3 heading when there
// is none.
func Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1, h2, h3").First().Text())
}
