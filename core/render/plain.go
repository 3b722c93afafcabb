package render

import (
	"fmt"
	"strings"

	"github.com/adarshpam3/contentcrafty-sub000/core"
)

// PlainRenderer writes the plain view as-is, the way the editor's preview
// pane shows it.
type PlainRenderer struct{}

// NewPlainRenderer creates a PlainRenderer.
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// Render returns the plain view followed by a newline.
func (r *PlainRenderer) Render(view core.PlainView) ([]byte, error) {
	if view.Text == "" {
		return nil, nil
	}
	return []byte(view.Text + "\n"), nil
}

// Extension returns the file extension for plain output.
func (r *PlainRenderer) Extension() string {
	return ".txt"
}

// Names lists the renderer names accepted by ByName.
var Names = []string{"plain", "markdown", "json", "pdf"}

// ByName returns the renderer registered under name.
func ByName(name string) (core.Renderer, error) {
	switch strings.ToLower(name) {
	case "", "plain", "text", "txt":
		return NewPlainRenderer(), nil
	case "markdown", "md":
		return NewMarkdownRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "pdf":
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(Names, ", "))
	}
}
