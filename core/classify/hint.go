package classify

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/codepaste/core"
)

// hintRegex finds a language declared by a highlighter class:
// language-go, lang-py, "brush: js;" (SyntaxHighlighter) or
// highlight-source-rust (GitHub).
var hintRegex = regexp.MustCompile(`(?i)(?:language-|lang-|brush:\s*|highlight-source-)([a-z0-9+#]+)`)

// aliases maps common short names to canonical fence tags.
var aliases = map[string]core.Language{
	"js":         core.LangJavaScript,
	"ts":         core.LangTypeScript,
	"py":         core.LangPython,
	"rb":         core.LangRuby,
	"cs":         core.LangCSharp,
	"csharp":     core.LangCSharp,
	"c#":         core.LangCSharp,
	"cpp":        core.LangCPP,
	"c++":        core.LangCPP,
	"sh":         core.LangBash,
	"shell":      core.LangBash,
	"yml":        core.LangYAML,
	"md":         core.LangMarkdown,
	"ps1":        core.LangPowerShell,
	"powershell": core.LangPowerShell,
}

// NormalizeAlias lowercases name and maps known aliases to their canonical
// tag. Unknown names pass through lowercased.
func NormalizeAlias(name string) core.Language {
	return normalizeAlias(name, nil)
}

func normalizeAlias(name string, extra map[string]core.Language) core.Language {
	name = strings.ToLower(strings.TrimSpace(name))
	if lang, ok := extra[name]; ok {
		return lang
	}
	if lang, ok := aliases[name]; ok {
		return lang
	}
	return core.Language(name)
}

// HintLanguage returns the language named by the first element, in document
// order, whose class attribute carries a highlighter prefix. The name is
// returned raw, before alias mapping; "" means no hint.
func HintLanguage(html string) string {
	if !strings.Contains(strings.ToLower(html), "class") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var hint string
	doc.Find("[class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		m := hintRegex.FindStringSubmatch(sel.AttrOr("class", ""))
		if m == nil {
			return true
		}
		hint = m[1]
		return false
	})
	return hint
}
