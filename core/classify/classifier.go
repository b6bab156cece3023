// Package classify implements the Classifier interface.
// A language is taken from an explicit highlighter class when the markup
// carries one; otherwise the extracted text runs through an ordered cascade
// of rules and the first match wins.
package classify

import (
	"strings"

	"github.com/gaurav-prasanna/codepaste/core"
	"github.com/gaurav-prasanna/codepaste/core/extract"
)

// RuleClassifier resolves class hints and evaluates the content cascade.
type RuleClassifier struct {
	aliases map[string]core.Language
	rules   []Rule
}

// New creates a RuleClassifier using the built-in alias table and cascade.
func New() *RuleClassifier {
	return &RuleClassifier{rules: cascade}
}

// WithAliases returns a copy of c that also maps the given hint names
// (case-insensitive) to tags. Extra aliases take precedence over built-in ones.
func (c *RuleClassifier) WithAliases(extra map[string]string) *RuleClassifier {
	merged := make(map[string]core.Language, len(c.aliases)+len(extra))
	for k, v := range c.aliases {
		merged[k] = v
	}
	for k, v := range extra {
		merged[strings.ToLower(strings.TrimSpace(k))] = NormalizeAlias(v)
	}
	return &RuleClassifier{aliases: merged, rules: c.rules}
}

// Classify determines the language of a fragment. html is searched for a
// class hint; text is the extracted plain text the cascade runs on.
func (c *RuleClassifier) Classify(html, text string) core.Classification {
	if hint := HintLanguage(html); hint != "" {
		return core.Classification{
			Language: normalizeAlias(hint, c.aliases),
			Source:   core.SourceHint,
			Rule:     "class-hint",
		}
	}
	return c.ClassifyText(text)
}

// ClassifyText runs only the content cascade.
func (c *RuleClassifier) ClassifyText(text string) core.Classification {
	s := NewSample(text)
	for _, r := range c.rules {
		if lang, ok := r.Evaluate(s); ok {
			return core.Classification{
				Language: lang,
				Source:   core.SourceContent,
				Rule:     r.Name(),
			}
		}
	}
	return core.Classification{}
}

// DetectLanguage returns the fence tag for an HTML fragment, or "" when the
// language cannot be determined. Fragments larger than
// core.DefaultMaxInputBytes are not examined.
func DetectLanguage(html string) core.Language {
	if html == "" || len(html) > core.DefaultMaxInputBytes {
		return core.LangNone
	}
	text := extract.New().Extract(html)
	return New().Classify(html, text).Language
}
