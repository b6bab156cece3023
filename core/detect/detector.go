// Package detect implements the Detector interface.
// A fragment counts as code when any one of four cheap markup checks fires:
//  1. an editor generator <meta> tag (VS Code, JetBrains, Sublime, ...)
//  2. a <pre> or <code> element
//  3. a monospace font-family declaration
//  4. at least three inline-colored <span> elements (syntax highlighting)
package detect

import (
	"regexp"

	"github.com/gaurav-prasanna/codepaste/core"
)

// editorNames lists generator values written by code editors into the
// HTML flavor they put on the clipboard.
const editorNames = `vscode|visual studio code|intellij|jetbrains|sublime|notepad\+\+|eclipse|xcode`

const monospaceFonts = `(?:monospace|consolas|courier|monaco|menlo|source code|fira code|jetbrains|roboto mono|ubuntu mono|cascadia|hack|inconsolata)`

var (
	generatorRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<meta\b[^>]*name\s*=\s*["']?generator["']?[^>]*content\s*=\s*["'][^"']*(?:` + editorNames + `)[^"']*["']`),
		regexp.MustCompile(`(?i)<meta\b[^>]*content\s*=\s*["'][^"']*(?:` + editorNames + `)[^"']*["'][^>]*name\s*=\s*["']?generator\b`),
	}

	preRegex  = regexp.MustCompile(`(?is)<pre\b[^>]*>.*?</pre\s*>`)
	codeRegex = regexp.MustCompile(`(?is)<code\b[^>]*>.*?</code\s*>`)

	// The font-family scan stays inside the style attribute value: it stops at
	// a ';' or the attribute's closing quote, and steps over &quot; entities.
	monospaceRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bstyle\s*=\s*"[^"]*?\bfont-family\s*:(?:&quot;|&#39;|[^;">])*?` + monospaceFonts),
		regexp.MustCompile(`(?i)\bstyle\s*=\s*'[^']*?\bfont-family\s*:(?:&quot;|&#39;|[^;'>])*?` + monospaceFonts),
	}

	// Only the color property counts, not background-color or border-color.
	coloredSpanRegex = regexp.MustCompile(`(?i)<span\b[^>]*\bstyle\s*=\s*(?:"(?:[^"]*[;\s])?|'(?:[^']*[;\s])?)color\s*:`)
)

// HTMLDetector runs the code-likeness checks against raw clipboard HTML.
type HTMLDetector struct{}

// New creates an HTMLDetector.
func New() *HTMLDetector {
	return &HTMLDetector{}
}

// Detect reports which checks fire for html. Empty input yields no signals.
func (d *HTMLDetector) Detect(html string) core.Signals {
	var s core.Signals
	if html == "" {
		return s
	}
	for _, re := range generatorRegexes {
		if re.MatchString(html) {
			s.EditorGenerator = true
			break
		}
	}
	s.PreOrCode = preRegex.MatchString(html) || codeRegex.MatchString(html)
	for _, re := range monospaceRegexes {
		if re.MatchString(html) {
			s.MonospaceFont = true
			break
		}
	}
	s.ColoredSpans = CountColoredSpans(html)
	return s
}

// IsCode reports whether html looks like copied source code.
func (d *HTMLDetector) IsCode(html string) bool {
	return d.Detect(html).IsCode()
}

// CountColoredSpans counts <span> elements whose inline style sets a color.
func CountColoredSpans(html string) int {
	return len(coloredSpanRegex.FindAllStringIndex(html, -1))
}
