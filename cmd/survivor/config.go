package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivor/internal/config"
)

var (
	flagFormat       string
	flagConfigPath   string
	flagConfigPreset string
	flagDefaults     bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the config the game would run with, after the search path and
difficulty preset are applied. Redirect the output to a file to start a
custom config.

Examples:
  survivor config > ~/.survivor/configs/survivor.yaml
  survivor config --format toml
  survivor config --difficulty hard
  survivor config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to a custom YAML or TOML game config")
	configCmd.Flags().StringVar(&flagConfigPreset, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default YAML with its comments")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want yaml or toml)\n", flagFormat)
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagConfigPreset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, preset)

	out, err := config.Encode(cfg, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
