// Package render — JSON renderer.
// Builds structured JSON from the plain view and article metadata.
// Structure is read back from the plain view's markers (headings, links,
// list items, code fences) so it always agrees with what the preview shows.
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/adarshpam3/contentcrafty-sub000/core"
)

// JSONRenderer produces structured JSON output from a plain view.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts the plain view and metadata into JSON.
func (r *JSONRenderer) Render(view core.PlainView) ([]byte, error) {
	page := core.ViewJSON{
		Metadata:  view.Meta,
		Text:      view.Text,
		Structure: Analyze(view.Text),
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// Analyze extracts structural information from a plain view.
func Analyze(text string) core.ViewStructure {
	return core.ViewStructure{
		Headings:   extractHeadings(text),
		Links:      extractLinks(text),
		ListItems:  countListItems(text),
		CodeBlocks: countCodeBlocks(text),
	}
}

// --- Plain view parsing helpers ---

var headingRegex = regexp.MustCompile(`(?m)^(#{1,3})\s+(.+)$`)

func extractHeadings(text string) []core.Heading {
	matches := headingRegex.FindAllStringSubmatch(text, -1)
	headings := make([]core.Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, core.Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

// linkRegex matches [text](href); href may be empty.
var linkRegex = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)

func extractLinks(text string) []core.Link {
	matches := linkRegex.FindAllStringSubmatch(text, -1)
	links := make([]core.Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, core.Link{
			Text: m[1],
			Href: m[2],
		})
	}
	return links
}

var listItemRegex = regexp.MustCompile(`(?m)^(\* |\d+\. )`)

func countListItems(text string) int {
	return len(listItemRegex.FindAllString(text, -1))
}

// countCodeBlocks counts fenced code blocks (``` delimited).
func countCodeBlocks(text string) int {
	return strings.Count(text, "```") / 2
}
