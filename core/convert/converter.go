// Package convert wires the pipeline stages together.
// It exposes the two operations an editor calls on paste:
//
//	IsCodeHTML                  should this fragment become a code block?
//	ConvertToMarkdownCodeBlock  the fenced, language-tagged Markdown for it
//
// Both are total: any input string yields a boolean or a string, never an error.
package convert

import (
	"fmt"
	"time"

	"github.com/gaurav-prasanna/codepaste/core"
	"github.com/gaurav-prasanna/codepaste/core/classify"
	"github.com/gaurav-prasanna/codepaste/core/dedent"
	"github.com/gaurav-prasanna/codepaste/core/detect"
	"github.com/gaurav-prasanna/codepaste/core/extract"
	"github.com/gaurav-prasanna/codepaste/core/fence"
	"github.com/gaurav-prasanna/codepaste/internal/logger"
)

// DefaultMaxInputBytes caps the size of a fragment the converter will look at.
const DefaultMaxInputBytes = core.DefaultMaxInputBytes

// Converter runs clipboard HTML through detect → extract → classify →
// dedent → fence.
type Converter struct {
	detector   core.Detector
	extractor  core.Extractor
	classifier core.Classifier
	dedenter   core.Dedenter
	assembler  core.Assembler
	fallback   core.Fallback

	aliases       map[string]string
	maxInputBytes int
}

// Option configures a Converter.
type Option func(*Converter)

// WithMaxInputBytes sets the input cap. Zero or a negative value disables it.
func WithMaxInputBytes(n int) Option {
	return func(c *Converter) {
		c.maxInputBytes = n
	}
}

// WithAliases adds class-hint aliases (e.g. "golang" → "go"). Repeated
// options accumulate; a later mapping for the same name wins.
func WithAliases(extra map[string]string) Option {
	return func(c *Converter) {
		if c.aliases == nil {
			c.aliases = make(map[string]string, len(extra))
		}
		for k, v := range extra {
			c.aliases[k] = v
		}
	}
}

// WithFallback renders non-code fragments through f.
func WithFallback(f core.Fallback) Option {
	return func(c *Converter) {
		c.fallback = f
	}
}

// New creates a Converter with the standard stages.
func New(opts ...Option) *Converter {
	c := &Converter{
		detector:      detect.New(),
		extractor:     extract.New(),
		dedenter:      dedent.New(),
		assembler:     fence.New(),
		maxInputBytes: DefaultMaxInputBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.classifier = classify.New().WithAliases(c.aliases)
	return c
}

func (c *Converter) oversize(html string) bool {
	return c.maxInputBytes > 0 && len(html) > c.maxInputBytes
}

// IsCodeHTML reports whether html looks like copied source code.
// Oversize fragments are never treated as code.
func (c *Converter) IsCodeHTML(html string) bool {
	if html == "" || c.oversize(html) {
		return false
	}
	return c.detector.Detect(html).IsCode()
}

// ToMarkdownCodeBlock converts html into a fenced code block. It does not
// consult the detector; callers gate on IsCodeHTML first. Empty, oversize
// or text-free fragments yield "".
func (c *Converter) ToMarkdownCodeBlock(html string) string {
	if html == "" || c.oversize(html) {
		return ""
	}
	text := c.extractor.Extract(html)
	class := c.classifier.Classify(html, text)
	return c.assembler.Assemble(class.Language, c.dedenter.Dedent(text))
}

// Convert runs the full pipeline and reports every intermediate result.
// When a fallback is configured and the fragment is not code, Markdown holds
// the fallback rendering instead of a fence.
func (c *Converter) Convert(html string) *core.Result {
	start := time.Now()
	res := &core.Result{}
	res.Stats.InputBytes = len(html)
	defer func() {
		res.Stats.OutputBytes = len(res.Markdown)
		res.Stats.Duration = time.Since(start)
	}()

	if html == "" {
		return res
	}
	if c.oversize(html) {
		logger.Warn("fragment exceeds input cap", "bytes", len(html), "max", c.maxInputBytes)
		res.AddWarning(fmt.Sprintf("input of %d bytes exceeds the %d byte limit", len(html), c.maxInputBytes))
		return res
	}

	res.Signals = c.detector.Detect(html)
	res.IsCode = res.Signals.IsCode()

	res.Text = c.extractor.Extract(html)
	res.Stats.ExtractedBytes = len(res.Text)

	if !res.IsCode && c.fallback != nil {
		md, err := c.fallback.Convert(html)
		if err != nil {
			logger.Warn("rich-text fallback failed", "error", err)
			res.AddWarning(fmt.Sprintf("fallback: %v", err))
		} else {
			res.Markdown = md
			res.Fallback = true
			return res
		}
	}

	res.Classification = c.classifier.Classify(html, res.Text)
	res.Code = c.dedenter.Dedent(res.Text)
	res.Markdown = c.assembler.Assemble(res.Classification.Language, res.Code)

	logger.Debug("converted fragment",
		"is_code", res.IsCode,
		"language", res.Classification.Language,
		"source", res.Classification.Source,
		"rule", res.Classification.Rule,
	)
	if res.Code == "" {
		res.AddWarning("fragment contains no text")
	}
	return res
}

var defaultConverter = New()

// IsCodeHTML reports whether html looks like copied source code, using the
// default converter.
func IsCodeHTML(html string) bool {
	return defaultConverter.IsCodeHTML(html)
}

// ConvertToMarkdownCodeBlock converts html into a fenced, language-tagged
// Markdown code block using the default converter.
func ConvertToMarkdownCodeBlock(html string) string {
	return defaultConverter.ToMarkdownCodeBlock(html)
}
