// Package output handles file naming and writing for rendered articles.
// Filenames are derived from the article title or source (e.g.
// trail_running_shoes.pdf), so repeated exports overwrite in place.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data as <sanitized name><ext> and returns the path written.
func (w *Writer) Write(name string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, Filename(name)+ext)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Filename converts a title, URL or path into a flat, lower-case filename.
// Example: "https://shop.io/Trail Shoes" → shop_io_trail_shoes
func Filename(name string) string {
	name = strings.TrimPrefix(name, "https://")
	name = strings.TrimPrefix(name, "http://")
	if ext := filepath.Ext(name); len(ext) <= 6 && !strings.ContainsRune(ext, ' ') {
		name = strings.TrimSuffix(name, ext)
	}

	s := strings.Trim(sanitize(strings.ToLower(name)), "_")
	if s == "" {
		return "untitled"
	}
	return s
}

// sanitize replaces runs of non-alphanumeric characters with one underscore.
func sanitize(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteRune('_')
			lastUnderscore = true
		}
	}
	return b.String()
}
