package fence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/codepaste/core"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name string
		lang core.Language
		code string
		want string
	}{
		{"empty code", core.LangGo, "", ""},
		{"tagged", core.LangJava, "int x = 1;", "```java\nint x = 1;\n```"},
		{"untagged", core.LangNone, "x", "```\nx\n```"},
		{"trailing newline not doubled", core.LangPython, "pass\n", "```python\npass\n```"},
		{"multi-line", core.LangGo, "a\nb", "```go\na\nb\n```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New().Assemble(tt.lang, tt.code))
		})
	}
}
