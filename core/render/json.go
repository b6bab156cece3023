// Package render: JSON renderer.
// Emits the full conversion result (signals, classification, text, fence,
// stats) plus a few figures derived from the normalized code.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/codepaste/core"
)

// resultDoc is the document shape shared by the JSON and YAML renderers.
type resultDoc struct {
	Result    *core.Result `json:"result" yaml:"result"`
	Lines     int          `json:"lines" yaml:"lines"`
	MaxIndent int          `json:"max_indent" yaml:"max_indent"`
	Tagged    bool         `json:"tagged" yaml:"tagged"`
}

func newResultDoc(res *core.Result) resultDoc {
	doc := resultDoc{Result: res, Tagged: res.Classification.Language != core.LangNone}
	if res.Code == "" {
		return doc
	}
	lines := strings.Split(res.Code, "\n")
	doc.Lines = len(lines)
	for _, line := range lines {
		if w := indentWidth(line); w > doc.MaxIndent {
			doc.MaxIndent = w
		}
	}
	return doc
}

func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// JSONRenderer produces structured JSON output from a result.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the result as indented JSON.
func (r *JSONRenderer) Render(res *core.Result) ([]byte, error) {
	data, err := json.MarshalIndent(newResultDoc(res), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
