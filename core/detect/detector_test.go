package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const vscodeHTML = `<html><head><meta name="generator" content="Visual Studio Code"></head>` +
	`<body><div style="color: #d4d4d4;background-color: #1e1e1e;font-family: Consolas, 'Courier New', monospace;">` +
	`<div><span style="color: #569cd6;">public</span> <span style="color: #569cd6;">class</span> <span style="color: #4ec9b0;">Test</span> {</div>` +
	`</div></body></html>`

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{"empty", "", false},
		{"plain paragraph", "<p>This is regular text</p>", false},
		{"vscode clipboard", vscodeHTML, true},
		{"pre block", "<pre>public class Foo {}</pre>", true},
		{"code element", `<pre><code class="language-java">int x = 1;</code></pre>`, true},
		{"inline code", "<p>run <code>make</code> first</p>", true},
		{"preview tag is not pre", "<preview>text</preview>", false},
		{"unclosed pre", "<pre>text", false},
		{"consolas font", `<div style="font-family: Consolas;">x</div>`, true},
		{"quoted source code pro", `<div style="font-family: &quot;Source Code Pro&quot;, serif">x</div>`, true},
		{"serif font", `<div style="font-family: Georgia, serif;">x</div>`, false},
		{"monospace after other property", `<div style="font-family: Arial; color: red">monospace</div>`, false},
		{"font word in text after style", `<p style="font-family: Georgia">The parcel was sent by courier yesterday.</p>`, false},
		{"hack in text after style", `<p style="font-family: Arial">We hack on weekends.</p>`, false},
		{"single-quoted style with quoted family", `<div style='font-family: "Fira Code", serif'>x</div>`, true},
		{"font-family outside style attribute", `<p title="font-family">menlo</p>`, false},
		{
			"three colored spans",
			`<span style="color: red">a</span><span style="color:#fff">b</span><span style="COLOR: blue">c</span>`,
			true,
		},
		{
			"two colored spans",
			`<span style="color: red">a</span><span style="color: blue">b</span>`,
			false,
		},
		{"generator content first", `<meta content="JetBrains IDE" name="generator">`, true},
		{"unrelated generator", `<meta name="generator" content="Microsoft Word 15">`, false},
	}
	d := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.IsCode(tt.html))
		})
	}
}

func TestDetect_Signals(t *testing.T) {
	html := `<div style="font-family: Consolas"><span style="color: #569cd6;">const</span> ` +
		`<span style="color: #9cdcfe;">x</span> = <span style="color: #b5cea8;">42</span>;` +
		`<span style="color: #6a9955;">// answer</span></div>`

	s := New().Detect(html)
	assert.False(t, s.EditorGenerator)
	assert.False(t, s.PreOrCode)
	assert.True(t, s.MonospaceFont)
	assert.Equal(t, 4, s.ColoredSpans)
	assert.True(t, s.IsCode())
}

func TestCountColoredSpans(t *testing.T) {
	assert.Equal(t, 0, CountColoredSpans(""))
	assert.Equal(t, 0, CountColoredSpans(`<span class="kw">if</span>`))
	assert.Equal(t, 0, CountColoredSpans(`<span style="background-color: yellow">x</span>`))
	assert.Equal(t, 0, CountColoredSpans(`<span style="border-color:red">x</span>`))
	assert.Equal(t, 1, CountColoredSpans(`<span style="background-color: #fff; color: #000">x</span>`))
	assert.Equal(t, 2, CountColoredSpans(`<SPAN style='color:red'>a</SPAN><span id="k" style="font-weight:bold;color:blue">b</span>`))
}
