package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/codepaste/core"
)

func TestClassifyText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want core.Language
		rule string
	}{
		{"java class", "public class Hello { private void test() {} }", core.LangJava, "java"},
		{"java import", "import java.util.List;\n\nList<String> xs = new ArrayList<>();", core.LangJava, "java"},
		{"go program", "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}", core.LangGo, "go"},
		{"go error check", "x := compute()\nif err != nil {\n\treturn err\n}", core.LangGo, "go"},
		{"typescript interface", "interface User {\n  name: string;\n  age: number;\n}", core.LangTypeScript, "typescript"},
		{"typescript function", "function greet(name: string): string {\n  return `Hello ${name}`;\n}", core.LangTypeScript, "typescript"},
		{"javascript arrow", "const add = (a, b) => a + b;\nconsole.log(add(1, 2));", core.LangJavaScript, "javascript"},
		{
			"csharp program",
			"using System;\n\nnamespace Demo\n{\n    class Program\n    {\n        static void Main(string[] args)\n        {\n            Console.WriteLine(\"Hello\");\n        }\n    }\n}",
			core.LangCSharp, "csharp",
		},
		{"shared class syntax goes to the earlier rule", "using System;\npublic class Foo { }", core.LangJava, "java"},
		{"typescript calling unwrap", "const value: number = result.unwrap();", core.LangTypeScript, "typescript"},
		{"csharp linq with cmdlet in comment", "// Run Add-Migration InitialCreate\nvar big = items.Where(x => x > 1);", core.LangCSharp, "csharp"},
		{"python def", "def hello():\n    print(\"hello\")", core.LangPython, "python"},
		{"c program", "#include <stdio.h>\n\nint main(void) {\n    printf(\"hi\\n\");\n    return 0;\n}", core.LangC, "c/cpp"},
		{"cpp program", "#include <iostream>\n\nint main() {\n    std::cout << \"hi\" << std::endl;\n}", core.LangCPP, "c/cpp"},
		{
			"abap report",
			"REPORT z_demo.\nDATA: lv_count TYPE i.\nLOOP AT lt_items INTO ls_item.\n  lv_count = lv_count + 1.\nENDLOOP.",
			core.LangABAP, "abap",
		},
		{
			"html page",
			"<!DOCTYPE html>\n<html>\n<body>\n  <div class=\"x\">Hi</div>\n</body>\n</html>",
			core.LangHTML, "html/xml",
		},
		{
			"xml document",
			"<?xml version=\"1.0\"?>\n<config>\n  <item key=\"a\">1</item>\n</config>",
			core.LangXML, "html/xml",
		},
		{"css rule", ".btn {\n  color: red;\n  margin: 0 auto;\n}", core.LangCSS, "css/scss"},
		{"css font-face", "@font-face { font-family: 'X'; font-weight: bold; }", core.LangCSS, "css/scss"},
		{
			"scss nesting",
			"$primary: #333;\n\n.nav {\n  color: $primary;\n  &:hover {\n    color: red;\n  }\n}",
			core.LangSCSS, "css/scss",
		},
		{"sql select", "SELECT id, name FROM users WHERE active = 1 ORDER BY name;", core.LangSQL, "sql"},
		{"php script", "<?php\n$name = 'World';\necho \"Hello $name\";", core.LangPHP, "php"},
		{"php function", "<?php\nfunction greet($name) {\n    return \"Hi \" . $name;\n}", core.LangPHP, "php"},
		{
			"ruby class",
			"class Greeter\n  def initialize(name)\n    @name = name\n  end\n\n  def greet\n    puts \"Hello #{@name}\"\n  end\nend",
			core.LangRuby, "ruby",
		},
		{
			"rust main",
			"fn main() {\n    let mut v = Vec::new();\n    v.push(1);\n    println!(\"{:?}\", v);\n}",
			core.LangRust, "rust",
		},
		{
			"rust struct is not c",
			"struct Point {\n    x: i32,\n    y: i32,\n}\n\nimpl Point {\n    fn norm(&self) -> i32 { self.x + self.y }\n}",
			core.LangRust, "rust",
		},
		{
			"rust std path is not cpp",
			"use std::collections::HashMap;\n\nfn main() {\n    let mut m = HashMap::new();\n    m.insert(1, 2);\n}",
			core.LangRust, "rust",
		},
		{"c struct", "struct point {\n    int x;\n    int y;\n};", core.LangC, "c/cpp"},
		{"bash loop", "#!/bin/bash\nfor f in *.txt; do\n  echo \"$f\"\ndone", core.LangBash, "bash"},
		{"powershell pipeline", "Get-ChildItem -Path . | Where-Object { $_.Length -gt 1kb }", core.LangPowerShell, "powershell"},
		{"yaml mapping", "server:\n  port: 8080\n  host: localhost", core.LangYAML, "yaml"},
		{"json object", "{\n  \"name\": \"demo\",\n  \"version\": 1\n}", core.LangJSON, "json"},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ClassifyText(tt.text)
			assert.Equal(t, tt.want, got.Language)
			assert.Equal(t, tt.rule, got.Rule)
			assert.Equal(t, core.SourceContent, got.Source)
		})
	}
}

func TestClassifyText_Undetermined(t *testing.T) {
	c := New()
	for _, text := range []string{"", "Just some words", "   \n  \n"} {
		got := c.ClassifyText(text)
		assert.Equal(t, core.Classification{}, got, "text %q", text)
	}
}

func TestClassify_HintBeatsContent(t *testing.T) {
	html := `<pre><code class="language-python">func main() { x := 1 }</code></pre>`
	got := New().Classify(html, "func main() { x := 1 }")

	assert.Equal(t, core.LangPython, got.Language)
	assert.Equal(t, core.SourceHint, got.Source)
}

func TestHintLanguage(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"none", "<pre>x</pre>", ""},
		{"empty", "", ""},
		{"language prefix", `<pre><code class="language-java">x</code></pre>`, "java"},
		{"lang prefix among others", `<code class="hljs lang-py">x</code>`, "py"},
		{"syntaxhighlighter brush", `<pre class="brush: js; gutter: false">x</pre>`, "js"},
		{"github highlight", `<div class="highlight highlight-source-rust"><pre>x</pre></div>`, "rust"},
		{"first in document order", `<div class="language-go"><code class="language-ts">x</code></div>`, "go"},
		{"single-quoted attribute", `<code class='language-c++'>x</code>`, "c++"},
		{"unrelated classes", `<div class="container"><span class="kw">if</span></div>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HintLanguage(tt.html))
		})
	}
}

func TestNormalizeAlias(t *testing.T) {
	tests := map[string]core.Language{
		"js":         core.LangJavaScript,
		"JS":         core.LangJavaScript,
		"ts":         core.LangTypeScript,
		"py":         core.LangPython,
		"rb":         core.LangRuby,
		"cs":         core.LangCSharp,
		"csharp":     core.LangCSharp,
		"cpp":        core.LangCPP,
		"c++":        core.LangCPP,
		"sh":         core.LangBash,
		"shell":      core.LangBash,
		"yml":        core.LangYAML,
		"md":         core.LangMarkdown,
		"PS1":        core.LangPowerShell,
		"powershell": core.LangPowerShell,
		"java":       core.LangJava,
		"kotlin":     core.Language("kotlin"),
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeAlias(in), "alias %q", in)
	}
}

func TestWithAliases(t *testing.T) {
	c := New().WithAliases(map[string]string{"Golang": "go", "js": "jsx"})

	got := c.Classify(`<code class="lang-golang">x</code>`, "x")
	assert.Equal(t, core.LangGo, got.Language)

	got = c.Classify(`<code class="language-js">x</code>`, "x")
	assert.Equal(t, core.Language("jsx"), got.Language)

	// Other classifiers keep the default table.
	got = New().Classify(`<code class="language-js">x</code>`, "x")
	assert.Equal(t, core.LangJavaScript, got.Language)
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		html string
		want core.Language
	}{
		{"empty", "", core.LangNone},
		{"java hint", `<pre><code class="language-java">public class Test {}</code></pre>`, core.LangJava},
		{"js hint", `<pre><code class="language-js">x</code></pre>`, core.LangJavaScript},
		{"ts hint", `<pre><code class="language-ts">x</code></pre>`, core.LangTypeScript},
		{"py hint", `<pre><code class="language-py">x</code></pre>`, core.LangPython},
		{"java content", `<div style="font-family: monospace;">public class Hello { private void test() {} }</div>`, core.LangJava},
		{"java in pre", "<pre>public class Foo {\n  void bar() {}\n}</pre>", core.LangJava},
		{
			"python content",
			`<div style="font-family: monospace;"><div>def hello():</div><div>&nbsp;&nbsp;&nbsp;&nbsp;print("hello")</div></div>`,
			core.LangPython,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.html))
		})
	}
}

func TestDetectLanguage_Oversize(t *testing.T) {
	html := `<pre><code class="language-go">` + strings.Repeat("x", core.DefaultMaxInputBytes) + `</code></pre>`
	assert.Equal(t, core.LangNone, DetectLanguage(html))
}

func TestRules_Order(t *testing.T) {
	var names []string
	for _, r := range Rules() {
		names = append(names, r.Name())
	}
	require.Equal(t, []string{
		"java", "go", "typescript", "javascript", "csharp", "python", "c/cpp", "abap",
		"html/xml", "css/scss", "sql", "php", "ruby", "rust", "bash", "powershell", "yaml", "json",
	}, names)
}

func TestScoreRule_Threshold(t *testing.T) {
	weak := NewSample("if (x) {\n}\n// endif.")
	assert.Equal(t, 3, abapRule.Score(weak))
	_, ok := abapRule.Evaluate(weak)
	assert.False(t, ok)

	strong := NewSample("IF sy-subrc <> 0.\n  WRITE: / 'failed'.\nENDIF.")
	assert.GreaterOrEqual(t, abapRule.Score(strong), abapThreshold)
	lang, ok := abapRule.Evaluate(strong)
	assert.True(t, ok)
	assert.Equal(t, core.LangABAP, lang)
}
