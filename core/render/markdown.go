// Package render provides output renderers for converted articles.
// This file implements the Markdown renderer, the "rich export" that runs
// the original markup through a full CommonMark converter instead of the
// lightweight plain view.
package render

import (
	"fmt"
	"strings"

	"github.com/adarshpam3/contentcrafty-sub000/core"
	"github.com/adarshpam3/contentcrafty-sub000/core/normalize"
)

// MarkdownRenderer converts the original markup to CommonMark.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts view.Markup to Markdown. An article with no markup falls
// back to its plain view.
func (r *MarkdownRenderer) Render(view core.PlainView) ([]byte, error) {
	if strings.TrimSpace(view.Markup) == "" {
		return []byte(view.Text), nil
	}
	markdown, err := normalize.New().Normalize(view.Markup)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
