// Package render provides output renderers for conversion results.
// This file implements the Markdown renderer, which is a simple passthrough.
package render

import (
	"github.com/gaurav-prasanna/codepaste/core"
)

// MarkdownRenderer writes the fence (or fallback Markdown) as-is.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the result's Markdown followed by a newline. A fragment
// that produced no Markdown renders as empty output.
func (r *MarkdownRenderer) Render(res *core.Result) ([]byte, error) {
	if res.Markdown == "" {
		return []byte{}, nil
	}
	return []byte(res.Markdown + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
