package classify

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/codepaste/core"
)

// Sample is the text under classification, with its lowercase form cached
// for the rules that match case-insensitively.
type Sample struct {
	Text  string
	Lower string
}

// NewSample prepares text for rule evaluation.
func NewSample(text string) *Sample {
	return &Sample{Text: text, Lower: strings.ToLower(text)}
}

// Predicate is one independent check over a sample.
type Predicate func(s *Sample) bool

// Rule is one entry of the content cascade. Rules are evaluated in order and
// the first one that matches decides the language.
type Rule interface {
	Name() string
	Evaluate(s *Sample) (core.Language, bool)
}

// PredicateRule matches when Match holds. Refine, when set, picks the final
// tag among closely related languages (c or cpp, css or scss, html or xml).
type PredicateRule struct {
	Label    string
	Language core.Language
	Match    Predicate
	Refine   func(s *Sample) core.Language
}

// Name returns the rule label, defaulting to the language tag.
func (r PredicateRule) Name() string {
	if r.Label != "" {
		return r.Label
	}
	return string(r.Language)
}

// Evaluate applies the rule to s.
func (r PredicateRule) Evaluate(s *Sample) (core.Language, bool) {
	if !r.Match(s) {
		return core.LangNone, false
	}
	if r.Refine != nil {
		return r.Refine(s), true
	}
	return r.Language, true
}

// Signal is one weighted keyword or idiom check of a ScoreRule.
type Signal struct {
	Weight int
	Match  Predicate
}

// ScoreRule sums the weights of every matching signal and fires once the
// total reaches Threshold. It suits languages whose individual keywords are
// weak evidence but whose combination is unmistakable.
type ScoreRule struct {
	Language  core.Language
	Signals   []Signal
	Threshold int
}

// Name returns the language tag.
func (r ScoreRule) Name() string {
	return string(r.Language)
}

// Score returns the summed weight of the matching signals.
func (r ScoreRule) Score(s *Sample) int {
	total := 0
	for _, sig := range r.Signals {
		if sig.Match(s) {
			total += sig.Weight
		}
	}
	return total
}

// Evaluate applies the rule to s.
func (r ScoreRule) Evaluate(s *Sample) (core.Language, bool) {
	if r.Score(s) >= r.Threshold {
		return r.Language, true
	}
	return core.LangNone, false
}

// --- predicate builders ---

// contains holds when the text contains any of subs.
func contains(subs ...string) Predicate {
	return func(s *Sample) bool {
		for _, sub := range subs {
			if strings.Contains(s.Text, sub) {
				return true
			}
		}
		return false
	}
}

// lowerContains is contains over the lowercased text; subs must be lowercase.
func lowerContains(subs ...string) Predicate {
	return func(s *Sample) bool {
		for _, sub := range subs {
			if strings.Contains(s.Lower, sub) {
				return true
			}
		}
		return false
	}
}

// lowerContainsAll holds when the lowercased text contains every sub.
func lowerContainsAll(subs ...string) Predicate {
	return func(s *Sample) bool {
		for _, sub := range subs {
			if !strings.Contains(s.Lower, sub) {
				return false
			}
		}
		return true
	}
}

// matches holds when any pattern matches the text. Patterns are compiled
// when the rule table is built.
func matches(patterns ...string) Predicate {
	res := compile(patterns)
	return func(s *Sample) bool {
		for _, re := range res {
			if re.MatchString(s.Text) {
				return true
			}
		}
		return false
	}
}

// lowerMatches is matches over the lowercased text.
func lowerMatches(patterns ...string) Predicate {
	res := compile(patterns)
	return func(s *Sample) bool {
		for _, re := range res {
			if re.MatchString(s.Lower) {
				return true
			}
		}
		return false
	}
}

func compile(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return res
}

func anyOf(ps ...Predicate) Predicate {
	return func(s *Sample) bool {
		for _, p := range ps {
			if p(s) {
				return true
			}
		}
		return false
	}
}

func allOf(ps ...Predicate) Predicate {
	return func(s *Sample) bool {
		for _, p := range ps {
			if !p(s) {
				return false
			}
		}
		return true
	}
}
