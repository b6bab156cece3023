// Package dedent implements the Dedenter interface.
// It normalizes line endings, collapses runs of blank lines, removes the
// indentation common to all non-blank lines and trims blank lines at both ends.
package dedent

import (
	"strings"
)

// TabWidth is the number of columns a tab counts for when measuring
// indentation.
const TabWidth = 4

// Normalizer removes common indentation from extracted code.
type Normalizer struct{}

// New creates a Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Dedent implements core.Dedenter.
func (n *Normalizer) Dedent(text string) string {
	return Dedent(text)
}

// Dedent normalizes text. Applying it twice gives the same result as
// applying it once.
func Dedent(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := collapseBlank(strings.Split(text, "\n"))

	minIndent := -1
	for _, line := range lines {
		if line == "" {
			continue
		}
		if w := Width(line); minIndent < 0 || w < minIndent {
			minIndent = w
		}
	}

	if minIndent > 0 {
		for i, line := range lines {
			lines[i] = strip(line, minIndent)
		}
	}

	return strings.Join(trimBlank(lines), "\n")
}

// Width returns the leading-whitespace width of line, counting a space as one
// column and a tab as TabWidth columns.
func Width(line string) int {
	w := 0
	for _, ch := range line {
		switch ch {
		case ' ':
			w++
		case '\t':
			w += TabWidth
		default:
			return w
		}
	}
	return w
}

// strip removes leading whitespace from line until width columns are gone
// or a non-whitespace character is reached.
func strip(line string, width int) string {
	removed := 0
	i := 0
	for i < len(line) && removed < width {
		switch line[i] {
		case ' ':
			removed++
		case '\t':
			removed += TabWidth
		default:
			return line[i:]
		}
		i++
	}
	return line[i:]
}

// collapseBlank empties whitespace-only lines and folds every run of
// consecutive blank lines into a single one.
func collapseBlank(lines []string) []string {
	out := lines[:0]
	prevBlank := false
	for _, line := range lines {
		blank := strings.TrimSpace(line) == ""
		if blank && prevBlank {
			continue
		}
		if blank {
			line = ""
		}
		out = append(out, line)
		prevBlank = blank
	}
	return out
}

// trimBlank drops blank lines at the start and end.
func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}
	return lines[start:end]
}
