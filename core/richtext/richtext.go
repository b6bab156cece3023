// Package richtext implements the Fallback interface.
// Fragments that are not code are pasted the way a rich-text editor would:
// scripts and styles are dropped, then the remaining HTML is converted to
// Markdown with html-to-markdown.
package richtext

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are removed before conversion; none of them carry text a
// user meant to paste.
var noiseSelectors = []string{
	"head", "script", "style", "noscript", "meta", "link",
	"iframe", "svg", "canvas", "button", "input", "select", "textarea",
}

// MarkdownFallback converts non-code HTML into Markdown.
type MarkdownFallback struct{}

// New creates a MarkdownFallback.
func New() *MarkdownFallback {
	return &MarkdownFallback{}
}

// Convert returns the Markdown rendering of html.
func (f *MarkdownFallback) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	body, err := doc.Find("body").First().Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}
