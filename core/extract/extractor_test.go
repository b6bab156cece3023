package extract

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "hello", "hello"},
		{"escaped angle brackets", "a &lt; b &amp;&amp; c &gt; d", "a < b && c > d"},
		{"escaped markup", "&lt;div&gt;Hello&lt;/div&gt;", "<div>Hello</div>"},
		{"line breaks", "line1<br/>line2<br>line3", "line1\nline2\nline3"},
		{"spaced self-closing br", "a<BR />b", "a\nb"},
		{"block ends", "<div>a</div><div>b</div>", "a\nb\n"},
		{"paragraphs and rows", "<p>x</p><table><tr><td>1</td></tr></table>", "x\n1\n"},
		{"list items", "<ul><li>one</li><li>two</li></ul>", "one\ntwo\n"},
		{"style removed", "<style>.a{color:red}</style>code", "code"},
		{"script removed", "<script type=\"text/javascript\">alert(1)</script>x", "x"},
		{"head removed", "<html><head><title>T</title></head><body>body</body></html>", "body"},
		{"header element kept", "<header>top</header>", "top"},
		{"nbsp", "a&nbsp;&nbsp;b", "a  b"},
		{"numeric references", "&#60;div&#62;&#38;test&#60;/div&#62;", "<div>&test</div>"},
		{"hex references", "&#x3C;&#X3e;&#x27;", "<>'"},
		{"apostrophes", "it&#39;s &apos;ok&apos; &#x27;", "it's 'ok' '"},
		{"tab references", "&tab;&#9;x", "\t\tx"},
		{"newline references", "a&#10;b&#13;", "a\nb\r"},
		{"single pass", "&amp;lt;", "&lt;"},
		{"html5 named", "&copy; &hellip;", "© …"},
		{"unknown named kept", "&bogus; &", "&bogus; &"},
		{"invalid code point", "&#1114112;&#xD800;&#0;", "\ufffd\ufffd\ufffd"},
		{"raw nbsp", "a\u00a0b", "a b"},
		{"truncated tag", "text<span sty", "text<span sty"},
	}
	e := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.html))
		})
	}
}

func TestExtract_VSCodeFragment(t *testing.T) {
	html := `<meta charset='utf-8'><div style="color: #d4d4d4;font-family: Consolas, 'Courier New', monospace;">` +
		`<div><span style="color: #569cd6;">if</span> (a &lt; b) {</div>` +
		`<div>&nbsp;&nbsp;&nbsp;&nbsp;<span style="color: #dcdcaa;">run</span>();</div>` +
		`<div>}</div></div>`

	got := New().Extract(html)
	assert.Equal(t, "if (a < b) {\n    run();\n}\n\n", got)
}

// No source tag survives stripping, whatever the input looks like. Inputs are
// drawn without '&' so decoded references cannot introduce new brackets.
func TestExtract_NoTagsRemain(t *testing.T) {
	tagPattern := regexp.MustCompile(`<[^>]+>`)
	alphabet := []byte("<>/ab \"'=\npredivstyle")
	rng := rand.New(rand.NewSource(42))
	e := New()

	for i := 0; i < 2000; i++ {
		n := rng.Intn(40)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		in := b.String()
		out := e.Extract(in)
		require.Falsef(t, tagPattern.MatchString(out), "input %q produced %q", in, out)
	}
}

func TestDecodeEntities_NoAmpersand(t *testing.T) {
	assert.Equal(t, "plain", DecodeEntities("plain"))
}
