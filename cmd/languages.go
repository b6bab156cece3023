package cmd

import (
	"fmt"

	"github.com/gaurav-prasanna/codepaste/core/classify"
	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the content rules in evaluation order",
	Long: `Languages prints the content classification cascade. Rules are tried top
to bottom and the first match decides the fence tag; a highlighter class
such as "language-go" in the markup takes precedence over all of them.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for i, r := range classify.Rules() {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i+1, r.Name())
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
