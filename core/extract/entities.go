package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// entityRef matches one character reference. Matching all of them in a
// single pass keeps "&amp;lt;" as the literal text "&lt;".
var entityRef = regexp.MustCompile(`&(?:#[0-9]{1,8}|#[xX][0-9a-fA-F]{1,8}|[a-zA-Z][a-zA-Z0-9]{1,31});`)

// namedEntities are the references editors actually emit. &nbsp; becomes a
// plain space so indentation survives as ordinary whitespace.
var namedEntities = map[string]string{
	"nbsp": " ",
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"quot": `"`,
	"apos": "'",
	"tab":  "\t",
	"Tab":  "\t",
}

// DecodeEntities replaces character references in s with the characters they
// stand for. Unknown named references are left untouched; numeric references
// to invalid code points decode to U+FFFD. Raw U+00A0 is turned into a space.
func DecodeEntities(s string) string {
	if strings.IndexByte(s, '&') >= 0 {
		s = entityRef.ReplaceAllStringFunc(s, decodeRef)
	}
	return strings.ReplaceAll(s, "\u00a0", " ")
}

func decodeRef(ref string) string {
	body := ref[1 : len(ref)-1]
	if body[0] != '#' {
		if v, ok := namedEntities[body]; ok {
			return v
		}
		// Defer the long tail of HTML5 names to x/net/html; it returns the
		// input unchanged when the name is unknown.
		return html.UnescapeString(ref)
	}

	var (
		n   uint64
		err error
	)
	if body[1] == 'x' || body[1] == 'X' {
		n, err = strconv.ParseUint(body[2:], 16, 32)
	} else {
		n, err = strconv.ParseUint(body[1:], 10, 32)
	}
	if err != nil || n == 0 || n > utf8.MaxRune {
		return string(utf8.RuneError)
	}
	r := rune(n)
	if r == 0xa0 {
		return " "
	}
	if !utf8.ValidRune(r) {
		return string(utf8.RuneError)
	}
	return string(r)
}
