// Package core defines the shared types and pipeline interfaces for
// ContentCrafty's plain-view tooling. Each stage is a small, testable
// interface: fetch → sanitize → convert → render → write.
package core

import "context"

// FetchResult holds the raw markup and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// ArticleMeta describes where a piece of markup came from.
type ArticleMeta struct {
	ID          string `json:"id,omitempty"`
	ProjectID   string `json:"project_id,omitempty"`
	Kind        string `json:"kind,omitempty"` // "blog" or "category"
	Title       string `json:"title"`
	Source      string `json:"source"`
	ConvertedAt string `json:"converted_at"` // ISO8601
}

// PlainView is the result of converting one piece of markup. The original
// markup travels with it so renderers can choose either representation.
type PlainView struct {
	Meta   ArticleMeta
	Markup string
	Text   string
}

// Heading represents a single heading found in the plain view.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in the plain view.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// ViewStructure holds structural counts parsed from the plain view.
type ViewStructure struct {
	Headings   []Heading `json:"headings"`
	Links      []Link    `json:"links"`
	ListItems  int       `json:"list_items"`
	CodeBlocks int       `json:"code_blocks"`
}

// ViewJSON is the complete JSON output for a single article.
type ViewJSON struct {
	Metadata  ArticleMeta   `json:"metadata"`
	Text      string        `json:"text"`
	Structure ViewStructure `json:"structure"`
}

// Fetcher retrieves raw markup from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor strips noise from markup and keeps the main content.
type Extractor interface {
	Extract(html string) (string, error)
}

// Converter produces the plain view of a markup string. Implementations
// never fail.
type Converter interface {
	Convert(markup string) string
}

// Renderer turns a plain view into a final output format.
type Renderer interface {
	Render(view PlainView) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".txt", ".pdf").
	Extension() string
}
