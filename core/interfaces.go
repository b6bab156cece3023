// Package core defines the pipeline interfaces for codepaste.
// Each stage of the clipboard-to-fence pipeline is a clean, testable interface:
// detect → extract → classify → dedent → fence.
package core

import "time"

// Language is a lowercase code-fence tag. The zero value means the
// language could not be determined and the fence is emitted untagged.
type Language string

// Languages the content classifier can produce. A class hint may yield
// any other tag (e.g. "kotlin"), which is passed through unchanged.
const (
	LangNone       Language = ""
	LangJava       Language = "java"
	LangGo         Language = "go"
	LangTypeScript Language = "typescript"
	LangJavaScript Language = "javascript"
	LangCSharp     Language = "csharp"
	LangPython     Language = "python"
	LangC          Language = "c"
	LangCPP        Language = "cpp"
	LangABAP       Language = "abap"
	LangHTML       Language = "html"
	LangXML        Language = "xml"
	LangCSS        Language = "css"
	LangSCSS       Language = "scss"
	LangSQL        Language = "sql"
	LangPHP        Language = "php"
	LangRuby       Language = "ruby"
	LangRust       Language = "rust"
	LangBash       Language = "bash"
	LangPowerShell Language = "powershell"
	LangYAML       Language = "yaml"
	LangJSON       Language = "json"
	LangMarkdown   Language = "markdown"
)

// DefaultMaxInputBytes caps the size of a fragment the pipeline will look at.
const DefaultMaxInputBytes = 512 * 1024

// Classification sources.
const (
	SourceHint    = "hint"
	SourceContent = "content"
)

// Signals records which code-likeness checks fired for a fragment.
type Signals struct {
	EditorGenerator bool `json:"editor_generator" yaml:"editor_generator"`
	PreOrCode       bool `json:"pre_or_code" yaml:"pre_or_code"`
	MonospaceFont   bool `json:"monospace_font" yaml:"monospace_font"`
	ColoredSpans    int  `json:"colored_spans" yaml:"colored_spans"`
}

// MinColoredSpans is the number of inline-colored spans that on their own
// mark a fragment as syntax-highlighted code.
const MinColoredSpans = 3

// IsCode reports whether any check fired.
func (s Signals) IsCode() bool {
	return s.EditorGenerator || s.PreOrCode || s.MonospaceFont || s.ColoredSpans >= MinColoredSpans
}

// Classification is the outcome of language detection.
type Classification struct {
	Language Language `json:"language" yaml:"language"`
	// Source is SourceHint, SourceContent, or empty when nothing matched.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Rule names the cascade rule that matched on content.
	Rule string `json:"rule,omitempty" yaml:"rule,omitempty"`
}

// Stats holds size and timing figures for one conversion.
type Stats struct {
	InputBytes     int           `json:"input_bytes" yaml:"input_bytes"`
	ExtractedBytes int           `json:"extracted_bytes" yaml:"extracted_bytes"`
	OutputBytes    int           `json:"output_bytes" yaml:"output_bytes"`
	Duration       time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// Result is the complete outcome of converting one clipboard fragment.
type Result struct {
	IsCode         bool           `json:"is_code" yaml:"is_code"`
	Signals        Signals        `json:"signals" yaml:"signals"`
	Classification Classification `json:"classification" yaml:"classification"`
	Text           string         `json:"text" yaml:"text"`
	Code           string         `json:"code" yaml:"code"`
	// Markdown is the code fence, or the rich-text rendering when the
	// fragment is not code and a fallback is configured.
	Markdown string   `json:"markdown" yaml:"markdown"`
	Fallback bool     `json:"fallback" yaml:"fallback"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Stats    Stats    `json:"stats" yaml:"stats"`
}

// AddWarning records a non-fatal problem with the conversion.
func (r *Result) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Detector decides whether an HTML fragment looks like copied source code.
type Detector interface {
	Detect(html string) Signals
}

// Extractor turns an HTML fragment into plain text with entities decoded.
type Extractor interface {
	Extract(html string) string
}

// Classifier infers the language tag from the fragment's markup and text.
type Classifier interface {
	Classify(html, text string) Classification
}

// Dedenter normalizes line endings, blank runs and common indentation.
type Dedenter interface {
	Dedent(text string) string
}

// Assembler wraps normalized code in a Markdown fence.
type Assembler interface {
	Assemble(lang Language, code string) string
}

// Fallback renders non-code HTML the way a plain rich-text paste would.
type Fallback interface {
	Convert(html string) (string, error)
}

// Renderer converts a conversion result into a final output format.
type Renderer interface {
	Render(res *Result) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
