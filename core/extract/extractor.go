// Package extract implements the Extractor interface.
// It turns a clipboard HTML fragment into the plain text a user sees:
//  1. Drops <style>, <script> and <head> blocks with their contents
//  2. Turns line-producing markup (<br>, </div>, </p>, </li>, </tr>) into newlines
//  3. Strips every remaining tag
//  4. Decodes character references
//
// Fragments are treated as text, never parsed into a DOM, so truncated or
// malformed markup degrades to stray characters instead of reordered content.
package extract

import (
	"regexp"
)

var (
	styleBlock  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)
	scriptBlock = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	headBlock   = regexp.MustCompile(`(?is)<head\b[^>]*>.*?</head\s*>`)

	breakTags     = regexp.MustCompile(`(?i)<br\b[^>]*>`)
	blockEndTags  = regexp.MustCompile(`(?i)</(?:div|p|li|tr)\s*>`)
	remainingTags = regexp.MustCompile(`<[^>]+>`)
)

// TextExtractor produces plain text from HTML fragments.
type TextExtractor struct{}

// New creates a TextExtractor.
func New() *TextExtractor {
	return &TextExtractor{}
}

// Extract returns the plain text of html. It never fails; any input,
// however malformed, yields some string.
func (e *TextExtractor) Extract(html string) string {
	if html == "" {
		return ""
	}

	text := styleBlock.ReplaceAllString(html, "")
	text = scriptBlock.ReplaceAllString(text, "")
	text = headBlock.ReplaceAllString(text, "")

	text = breakTags.ReplaceAllString(text, "\n")
	text = blockEndTags.ReplaceAllString(text, "\n")

	text = remainingTags.ReplaceAllString(text, "")

	return DecodeEntities(text)
}
