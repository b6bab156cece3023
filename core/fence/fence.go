// Package fence implements the Assembler interface.
package fence

import (
	"strings"

	"github.com/gaurav-prasanna/codepaste/core"
)

// Delimiter opens and closes a Markdown code fence.
const Delimiter = "```"

// MarkdownAssembler builds fenced code blocks.
type MarkdownAssembler struct{}

// New creates a MarkdownAssembler.
func New() *MarkdownAssembler {
	return &MarkdownAssembler{}
}

// Assemble implements core.Assembler.
func (a *MarkdownAssembler) Assemble(lang core.Language, code string) string {
	return Assemble(lang, code)
}

// Assemble wraps code in a fence tagged with lang. Empty code yields "".
// The closing delimiter always sits on its own line and is not followed by
// a newline.
func Assemble(lang core.Language, code string) string {
	if code == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(code) + len(lang) + 2*len(Delimiter) + 2)
	b.WriteString(Delimiter)
	b.WriteString(string(lang))
	b.WriteByte('\n')
	b.WriteString(code)
	if !strings.HasSuffix(code, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(Delimiter)
	return b.String()
}
