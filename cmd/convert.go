// Package cmd: convert command.
// This is the main command that orchestrates the pipeline:
// read → detect → extract → classify → dedent → fence → render → write.
//
// It handles flag validation, renderer selection and the rich-text fallback.
package cmd

import (
	"fmt"

	"github.com/gaurav-prasanna/codepaste/core"
	"github.com/gaurav-prasanna/codepaste/core/convert"
	"github.com/gaurav-prasanna/codepaste/core/output"
	"github.com/gaurav-prasanna/codepaste/core/render"
	"github.com/gaurav-prasanna/codepaste/core/richtext"
	"github.com/gaurav-prasanna/codepaste/internal/config"
	"github.com/gaurav-prasanna/codepaste/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag variables.
var (
	flagPDF        bool
	flagMarkdown   bool
	flagJSON       bool
	flagYAML       bool
	flagNoFallback bool
	flagOutputDir  string
	flagMaxInput   int
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert clipboard HTML into a Markdown code fence",
	Long: `Convert reads an HTML fragment (from a file, or stdin when no file or "-" is
given), detects whether it is source code, infers its language and emits a
fenced Markdown code block. Fragments that are not code are converted as
rich text unless --no-fallback is set.

Examples:
  xclip -o -t text/html | codepaste convert
  codepaste convert paste.html --json
  codepaste convert paste.html --pdf --output_dir ./out`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Output format flags (mutually exclusive).
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF (requires --output_dir)")
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output the full conversion result as JSON")
	convertCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Output the full conversion result as YAML")

	convertCmd.Flags().BoolVar(&flagNoFallback, "no-fallback", false, "Fence non-code fragments instead of converting them as rich text")
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Write to a file in this directory instead of stdout")
	convertCmd.Flags().IntVar(&flagMaxInput, "max_input_bytes", convert.DefaultMaxInputBytes, "Ignore fragments larger than this (0 = no limit)")

	_ = viper.BindPFlag("output_dir", convertCmd.Flags().Lookup("output_dir"))
	_ = viper.BindPFlag("max_input_bytes", convertCmd.Flags().Lookup("max_input_bytes"))
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := resolveFormat(cfg.Format)
	if err != nil {
		return err
	}
	if format == config.FormatPDF && cfg.OutputDir == "" {
		return fmt.Errorf("--pdf requires --output_dir")
	}

	html, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	converter := newConverter(cfg, !flagNoFallback)
	res := converter.Convert(html)
	for _, w := range res.Warnings {
		logger.Warn(w)
	}

	renderer := selectRenderer(format, source)
	data, err := renderer.Render(res)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if cfg.OutputDir == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(source, data, renderer.Extension())
	if err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	}
	return nil
}

// newConverter builds a converter from resolved settings.
func newConverter(cfg *config.Config, fallback bool) *convert.Converter {
	opts := []convert.Option{
		convert.WithMaxInputBytes(cfg.MaxInputBytes),
		convert.WithAliases(cfg.Aliases),
	}
	if fallback && cfg.Fallback {
		opts = append(opts, convert.WithFallback(richtext.New()))
	}
	return convert.New(opts...)
}

// resolveFormat picks the output format: at most one format flag may be
// given, otherwise the configured default applies.
func resolveFormat(configured string) (string, error) {
	var chosen []string
	if flagPDF {
		chosen = append(chosen, config.FormatPDF)
	}
	if flagMarkdown {
		chosen = append(chosen, config.FormatMarkdown)
	}
	if flagJSON {
		chosen = append(chosen, config.FormatJSON)
	}
	if flagYAML {
		chosen = append(chosen, config.FormatYAML)
	}

	switch len(chosen) {
	case 0:
		return configured, nil
	case 1:
		return chosen[0], nil
	default:
		return "", fmt.Errorf("only one output format allowed per run (got %d)", len(chosen))
	}
}

// selectRenderer creates the Renderer for a format.
func selectRenderer(format, source string) core.Renderer {
	switch format {
	case config.FormatJSON:
		return render.NewJSONRenderer()
	case config.FormatYAML:
		return render.NewYAMLRenderer()
	case config.FormatPDF:
		if source == "-" {
			source = output.StdinName
		}
		return render.NewPDFRenderer(source)
	default:
		return render.NewMarkdownRenderer()
	}
}
