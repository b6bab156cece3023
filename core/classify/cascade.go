package classify

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/codepaste/core"
)

// Distinctive markers, each used by its own language's rule.
var (
	csharpMarkers = anyOf(
		contains("using System"),
		matches(
			`\{\s*get;\s*(?:(?:private|protected|internal|init)?\s*set;\s*)?\}`,
			`\bConsole\.(?:Write|WriteLine|ReadLine|ReadKey)\(`,
			`\bstatic\s+(?:async\s+)?(?:void|Task|int)\s+Main\s*\(`,
			`\bstring\[\]\s+args\b`,
		),
	)

	phpMarkers = anyOf(
		contains("<?php", "$this->"),
		matches(`\$_(?:GET|POST|SESSION|SERVER|REQUEST|COOKIE)\[`),
	)

	rustMarkers = anyOf(
		contains("println!(", "let mut ", "use std::", "#[derive(", "&mut ", ".unwrap()"),
		matches(
			`\bfn\s+\w+\s*(?:<[^>]*>)?\s*\(`,
			`(?m)^\s*impl\b`,
		),
	)

	shellMarkers = matches(`(?m)^#!\s*/(?:usr/)?bin/(?:env\s+)?(?:ba|z|k|da)?sh\b`)

	powershellMarkers = matches(`\b(?:Get|Set|New|Remove|Write|Invoke|Test|Import|Export|Start|Stop|Add|Out|Select|Where|ForEach|Format|ConvertTo|ConvertFrom)-[A-Z][A-Za-z]+\b`)
)

// cppGate holds C++ idioms strong enough to open the c/cpp rule on their own.
// A std:: name counts only when used as a C++ value or type, not as a module
// path segment (std::env::args).
var cppGate = anyOf(
	contains("nullptr"),
	matches(
		`\bstd::\w+(?:\s*<<|\s*<|\s*\(|\s+[A-Za-z_])`,
		`\b(?:cout|cerr|clog)\s*<<|\bcin\s*>>`,
		`\btemplate\s*<`,
		`\b(?:unique|shared|weak)_ptr\s*<|\bmake_(?:unique|shared)\s*<`,
		`\b(?:static|dynamic|reinterpret|const)_cast\s*<`,
		`\busing\s+namespace\s+\w+`,
		`(?m)^\s*namespace\s+\w+\s*\{`,
		`#include\s*<(?:iostream|vector|string|map|unordered_map|memory|algorithm|sstream|fstream|thread)>`,
		`(?m)^\s*(?:public|private|protected):\s*$`,
		`\bclass\s+\w+\s*:\s*(?:public|private|protected)\s+\w+`,
	),
)

// cppSignals decides c versus cpp once the gate is open.
var cppSignals = anyOf(
	cppGate,
	contains("std::"),
	matches(`\w+::~?\w+\s*\(`),
)

var cFamily = anyOf(
	matches(
		`(?m)^\s*#(?:include|define|ifndef|ifdef|pragma)\b`,
		`\b(?:printf|fprintf|sprintf|snprintf|scanf|malloc|calloc|realloc|free|memcpy|memset|strcpy|strncpy|strcmp)\s*\(`,
		`\bint\s+main\s*\(`,
		`\btypedef\s+(?:struct|enum|union|unsigned|int|char|void)\b`,
		`\b(?:int|char|void|float|double|long|short|unsigned|size_t)\s*\*+\s*\w+`,
		`\bstruct\s+\w+\s*\{[^{}]*;\s*\}`,
	),
	cppGate,
)

var htmlVocabulary = anyOf(
	lowerContains("<!doctype html"),
	lowerMatches(
		`<html[\s>]`,
		`<(?:link|meta|script)\b[^>]*>`,
	),
	allOf(
		lowerMatches(`<(?:head|body|div|span|p|a|ul|ol|li|table|thead|tbody|tr|td|th|form|button|section|article|nav|header|footer|main|aside|h[1-6]|label|select|option|textarea|strong|em|b|i)\b[^>]*>`),
		lowerMatches(`</(?:head|body|div|span|p|a|ul|ol|li|table|thead|tbody|tr|td|th|form|button|section|article|nav|header|footer|main|aside|h[1-6]|label|select|option|textarea|strong|em|b|i)\s*>`),
	),
	lowerMatches(`<(?:img|input|br|hr)\b[^>]*\b(?:src|href|type|class|id|alt|name)\s*=`),
)

var xmlSignals = anyOf(
	contains("<?xml", "xmlns", "<![CDATA["),
	allOf(
		matches(`<[A-Za-z][\w:.-]*(?:\s[^<>]*)?>`),
		matches(`</[A-Za-z][\w:.-]*\s*>`),
	),
)

const cssProperties = `(?:color|background(?:-color|-image)?|margin(?:-\w+)?|padding(?:-\w+)?|display|font(?:-family|-size|-weight|-style)?|width|height|max-width|min-width|max-height|min-height|border(?:-\w+)?|position|top|left|right|bottom|text-align|text-decoration|z-index|opacity|flex(?:-\w+)?|grid(?:-\w+)?|gap|justify-content|align-items|transition|transform|animation|box-shadow|box-sizing|cursor|line-height|overflow|content|src|outline)`

var scssSignals = anyOf(
	matches(
		`(?m)^\s*\$[\w-]+\s*:`,
		`@(?:mixin|include|extend|use|forward|each)\b`,
		`(?m)^\s*&[^;\n]*\{`,
	),
)

var yamlKeyLine = regexp.MustCompile(`(?m)^\s*(?:-\s+)?[\w"'./-]+:(?:\s|$)`)

// looksLikeYAML accepts indentation-structured key/value text with none of
// the punctuation of brace or statement languages.
func looksLikeYAML(s *Sample) bool {
	t := s.Text
	return strings.Contains(t, ": ") &&
		strings.Contains(t, "\n") &&
		!strings.ContainsAny(t, "{;") &&
		yamlKeyLine.MatchString(t)
}

var jsonKey = regexp.MustCompile(`"\s*:`)

// looksLikeJSON accepts a brace- or bracket-wrapped document with at least
// one quoted key.
func looksLikeJSON(s *Sample) bool {
	t := strings.TrimSpace(s.Text)
	if len(t) < 2 {
		return false
	}
	wrapped := (t[0] == '{' && t[len(t)-1] == '}') || (t[0] == '[' && t[len(t)-1] == ']')
	return wrapped && jsonKey.MatchString(t)
}

// cascade is the content rule table in evaluation order. The order is part
// of the contract: several languages share syntax and earlier entries win.
var cascade = []Rule{
	PredicateRule{
		Language: core.LangJava,
		Match: anyOf(
			contains("import java.", "import javax.", "System.out.print", "System.err.print", "Collectors.", ".stream()"),
			matches(
				`\b(?:public|private|protected)\s+(?:(?:static|final|abstract|sealed)\s+)*(?:class|interface|enum|record)\s+\w+`,
				`@(?:Override|Autowired|Bean|RestController|RequestMapping|GetMapping|PostMapping|FunctionalInterface|SuppressWarnings|Test)\b`,
				`\bnew\s+(?:ArrayList|LinkedList|HashMap|TreeMap|LinkedHashMap)\s*<`,
				`\bpublic\s+static\s+void\s+main\s*\(\s*String`,
			),
		),
	},
	PredicateRule{
		Language: core.LangGo,
		Match: anyOf(
			contains("go func", "err != nil", "interface{}", "<-chan", "chan<-"),
			matches(
				`(?m)^package\s+\w+\s*$`,
				`\bfunc\s+(?:\([^)]*\)\s*)?\w+\s*(?:\[[^\]]*\])?\s*\(`,
				`\bfunc\s*\([^)]*\)\s*(?:\([^)]*\)|[\w*.\[\]]+)?\s*\{`,
				`\b\w+(?:\s*,\s*\w+)*\s*:=`,
				`\btype\s+\w+\s+(?:struct|interface)\s*\{`,
				`\bchan\s+\w`,
				`\bdefer\s+[\w.]+\(`,
				`\b(?:fmt|strings|strconv|errors|http|json|os|ioutil|filepath|context|sync|time|log|bytes|bufio|sort|regexp)\.[A-Z]\w*\b`,
			),
		),
	},
	PredicateRule{
		Language: core.LangTypeScript,
		Match: matches(
			`[\w)\]?]\s*:\s*(?:string|number|boolean|any|void|unknown|never|object|bigint)(?:\[\])*\s*(?:[,;)=|&{>]|=>)`,
			`(?m)^\s*(?:export\s+)?(?:declare\s+)?interface\s+\w+`,
			`(?m)^\s*(?:export\s+(?:declare\s+)?(?:const\s+)?|declare\s+(?:const\s+)?|const\s+)enum\s+\w+`,
			`(?m)^\s*(?:export\s+)?type\s+\w+(?:<[^>]*>)?\s*=`,
			`\b(?:Partial|Required|Readonly|Pick|Omit|Record|Exclude|Extract|NonNullable|ReturnType|Parameters|Awaited)<`,
			`:\s*(?:Promise|Array|Map|Set|Observable)<`,
			`\bas\s+(?:string|number|boolean|any|unknown|const)\b`,
			`\bkeyof\s+\w|\breadonly\s+\w+\??\s*:`,
			`@(?:Injectable|Component|NgModule|Input|Output|Directive|Pipe)\(`,
			`\b(?:private|public|protected)\s+(?:readonly\s+)?\w+\s*:\s*\w`,
			`\bfunction\s+\w+\s*<[\w\s,]+>\s*\(`,
		),
	},
	PredicateRule{
		Language: core.LangJavaScript,
		Match: anyOf(
			contains("module.exports", "JSON.stringify(", "JSON.parse(", "new Promise(", "=== ", "!== "),
			matches(
				`\bfunction\*?\s*\w*\s*\([^)$]*\)\s*\{`,
				`\b(?:const|let|var)\s+\w+\s*=\s*(?:async\s+)?(?:\([^)]*\)|\w+)\s*=>`,
				`\.[a-z]\w*\(\s*(?:async\s+)?(?:\([^)]*\)|\w+)\s*=>`,
				`\bconsole\.(?:log|error|warn|info|debug|table)\(`,
				`\bdocument\.(?:getElementById|getElementsByClassName|querySelector|querySelectorAll|createElement|addEventListener)\(`,
				`\bwindow\.(?:addEventListener|location|localStorage|setTimeout|onload)\b`,
				`\.addEventListener\(\s*['"]`,
				`\bimport\s+(?:\{[^}]*\}|\*\s+as\s+\w+|\w+)\s+from\s+['"]`,
				`\bexport\s+default\b`,
				`\brequire\(\s*['"][^'"]+['"]\s*\)`,
				`\.then\(\s*(?:function|\(|\w+\s*=>)`,
			),
		),
	},
	PredicateRule{
		Language: core.LangCSharp,
		Match: anyOf(
			csharpMarkers,
			matches(
				`(?m)^\s*namespace\s+[A-Z]\w*(?:\.\w+)*\s*(?:;|\{|$)`,
				`(?m)^\s*\[[A-Z]\w*(?:\([^\]]*\))?\]\s*$`,
				`\.(?:Where|Select|OrderBy|OrderByDescending|GroupBy|FirstOrDefault|SingleOrDefault|Any|All|Count)\(\s*\w+\s*=>`,
				`\basync\s+Task\b|\bTask<\w`,
				`\bvar\s+\w+\s*=\s*new\s+[A-Z]\w*<`,
				`\b(?:public|private|protected|internal)\s+(?:(?:static|override|virtual|async)\s+)*(?:string|bool|decimal)\s+[A-Z]\w*\s*[({]`,
			),
		),
	},
	PredicateRule{
		Language: core.LangPython,
		Match: matches(
			`(?m)^\s*(?:async\s+)?def\s+\w+\s*\(.*\)\s*(?:->\s*[^:]+)?:\s*(?:#.*)?$`,
			`(?m)^\s*class\s+\w+(?:\([^)]*\))?:\s*$`,
			`(?m)^\s*(?:elif\s.*|else|try|except(?:\s.*)?|finally):\s*$`,
			`(?m)^\s*(?:if|for|while|with)\s[^{};]*:\s*$`,
			`(?m)^\s*from\s+[\w.]+\s+import\s+[\w*(]`,
			`(?m)^\s*import\s+[\w.]+(?:\s+as\s+\w+)?\s*$`,
			`__(?:init|name|main|str|repr|dict|class|len|eq|enter|exit)__`,
			`(?m)^\s*print\(`,
			`\bf"[^"\n]*\{[^}\n]+\}[^"\n]*"|\bf'[^'\n]*\{[^}\n]+\}[^'\n]*'`,
		),
	},
	PredicateRule{
		Label:    "c/cpp",
		Language: core.LangC,
		Match:    cFamily,
		Refine: func(s *Sample) core.Language {
			if cppSignals(s) {
				return core.LangCPP
			}
			return core.LangC
		},
	},
	abapRule,
	PredicateRule{
		Label:    "html/xml",
		Language: core.LangHTML,
		Match:    anyOf(htmlVocabulary, xmlSignals),
		Refine: func(s *Sample) core.Language {
			if htmlVocabulary(s) {
				return core.LangHTML
			}
			return core.LangXML
		},
	},
	PredicateRule{
		Label:    "css/scss",
		Language: core.LangCSS,
		Match: anyOf(
			matches(
				`\{[^{}]*\b`+cssProperties+`\s*:\s*[^;{}\n]+`,
				`@(?:media|keyframes|font-face|import|supports|charset)\b`,
			),
			scssSignals,
		),
		Refine: func(s *Sample) core.Language {
			if scssSignals(s) {
				return core.LangSCSS
			}
			return core.LangCSS
		},
	},
	PredicateRule{
		Language: core.LangSQL,
		Match: lowerMatches(
			`\bselect\b[\s\S]+?\bfrom\b`,
			`\binsert\s+into\s+\w+`,
			`\bupdate\s+\w+\s+set\b`,
			`\bdelete\s+from\s+\w+`,
			`\bcreate\s+(?:or\s+replace\s+)?(?:table|view|index|unique\s+index|database|schema|procedure|function|trigger)\b`,
			`\b(?:drop|alter|truncate)\s+table\b`,
		),
	},
	PredicateRule{
		Language: core.LangPHP,
		Match: anyOf(
			phpMarkers,
			contains("<?="),
			matches(
				`(?m)^\s*namespace\s+\w+(?:\\\w+)+;`,
				`\bfunction\s+\w+\s*\([^)]*\$\w+`,
				`\$\w+->\w+`,
				`(?m)^\s*echo\s+\$\w+`,
			),
		),
	},
	PredicateRule{
		Language: core.LangRuby,
		Match: anyOf(
			allOf(
				matches(`(?m)^\s*def\s+(?:self\.)?\w+[?!=]?(?:\(.*\))?\s*$`),
				matches(`(?m)^\s*end\s*$`),
			),
			matches(
				`(?m)^\s*(?:require|require_relative)\s+['"]`,
				`(?m)^\s*puts\s`,
				`\battr_(?:accessor|reader|writer)\s+:`,
				`\bdo\s*\|\w+(?:,\s*\w+)*\|`,
				`(?m)^\s*class\s+\w+\s*<\s*[A-Z]\w*(?:::\w+)*\s*$`,
				`(?m)^\s*module\s+[A-Z]\w*\s*$`,
			),
		),
	},
	PredicateRule{
		Language: core.LangRust,
		Match: anyOf(
			rustMarkers,
			matches(
				`\bpub\s+(?:fn|struct|enum|mod|trait)\b`,
				`\b(?:println|print|format|vec|panic|assert|assert_eq)!\s*[(\[]`,
			),
		),
	},
	PredicateRule{
		Language: core.LangBash,
		Match: anyOf(
			shellMarkers,
			allOf(matches(`\bthen\b`), matches(`(?m)^\s*fi\s*$`)),
			matches(
				`(?m)^\s*if\s+\[\[?\s`,
				`(?m)^\s*(?:for|while)\s.*;\s*do\s*$`,
				`(?m)^\s*echo\s+["'$]`,
				`(?m)^\s*(?:sudo\s+)?(?:apt-get|apt|yum|dnf|brew|npm|npx|pip|pip3|docker|kubectl|git|curl|wget|chmod|chown|mkdir)\s`,
			),
		),
	},
	PredicateRule{
		Language: core.LangPowerShell,
		Match: anyOf(
			powershellMarkers,
			matches(
				`\$(?:PSVersionTable|PSScriptRoot|env:\w+|_\.\w+)`,
				`(?m)^\s*param\s*\(`,
				`\s-(?:eq|ne|gt|lt|ge|le|like|match|notmatch|contains)\s`,
				`\[(?:string|int|bool|switch|array|hashtable|PSCustomObject)\]\$`,
			),
		),
	},
	PredicateRule{
		Language: core.LangYAML,
		Match:    looksLikeYAML,
	},
	PredicateRule{
		Language: core.LangJSON,
		Match:    looksLikeJSON,
	},
}

// Rules returns the content cascade in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(cascade))
	copy(out, cascade)
	return out
}
