// Package render: YAML renderer.
package render

import (
	"fmt"

	"github.com/gaurav-prasanna/codepaste/core"
	"gopkg.in/yaml.v3"
)

// YAMLRenderer produces the same document as JSONRenderer, in YAML.
type YAMLRenderer struct{}

// NewYAMLRenderer creates a YAMLRenderer.
func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

// Render marshals the result as YAML.
func (r *YAMLRenderer) Render(res *core.Result) ([]byte, error) {
	data, err := yaml.Marshal(newResultDoc(res))
	if err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for YAML output.
func (r *YAMLRenderer) Extension() string {
	return ".yaml"
}
