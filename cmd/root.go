// Package cmd implements the CLI commands for codepaste using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/gaurav-prasanna/codepaste/internal/config"
	"github.com/gaurav-prasanna/codepaste/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "codepaste",
	Short: "Turn copied editor HTML into Markdown code fences",
	Long: `codepaste inspects the HTML an editor or browser puts on the clipboard,
decides whether it is source code, and converts it into a fenced,
language-tagged Markdown code block.

Usage:
  codepaste convert [file] [flags]
  codepaste detect [file]
  codepaste languages`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.codepaste.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".codepaste")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CODEPASTE")
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	// A missing config file is fine; defaults and flags still apply.
	_ = viper.ReadInConfig()

	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "file", used)
	}
}

// loadConfig resolves and validates the settings for a command run.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
