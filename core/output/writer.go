// Package output handles file naming and writing for codepaste outputs.
// Filenames derive from the input file name (snippet.html → snippet.md);
// input read from stdin is written as clipboard.<ext>.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StdinName is the base filename used when the input came from stdin.
const StdinName = "clipboard"

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data under a name derived from inputPath and returns the
// path written. An empty inputPath or "-" means stdin.
func (w *Writer) Write(inputPath string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, FilenameFor(inputPath)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// FilenameFor converts an input path into a flat base filename without
// extension. Example: ./snippets/My Paste.html → My_Paste
func FilenameFor(inputPath string) string {
	if inputPath == "" || inputPath == "-" {
		return StdinName
	}
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	name := sanitize(base)
	if strings.Trim(name, "_") == "" {
		return StdinName
	}
	return name
}

// sanitize replaces characters other than letters, digits, '-' and '_'
// with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
