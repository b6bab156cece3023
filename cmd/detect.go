package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gaurav-prasanna/codepaste/core"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "Explain whether a fragment is code and which language it is",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	html, _, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	res := newConverter(cfg, false).Convert(html)
	printDetection(cmd.OutOrStdout(), res)
	return nil
}

func printDetection(w io.Writer, res *core.Result) {
	fmt.Fprintf(w, "code:     %t\n", res.IsCode)
	fmt.Fprintf(w, "signals:  %s\n", describeSignals(res.Signals))

	c := res.Classification
	if c.Language == core.LangNone {
		fmt.Fprintln(w, "language: (none)")
	} else {
		fmt.Fprintf(w, "language: %s (%s, rule %s)\n", c.Language, c.Source, c.Rule)
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "warning:  %s\n", warn)
	}
}

func describeSignals(s core.Signals) string {
	var parts []string
	if s.EditorGenerator {
		parts = append(parts, "editor-generator")
	}
	if s.PreOrCode {
		parts = append(parts, "pre/code")
	}
	if s.MonospaceFont {
		parts = append(parts, "monospace-font")
	}
	if s.ColoredSpans > 0 {
		parts = append(parts, fmt.Sprintf("colored-spans=%d", s.ColoredSpans))
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, ", ")
}
