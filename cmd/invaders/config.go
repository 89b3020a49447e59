package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/patricklapgar/Space-Shooter-Game/internal/config"
)

var (
	flagProfile string
	flagFormat  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default rules",
	Long: `Print the built-in rules for a profile. Save the output, edit the
values you want to change and pass the file with --config.

Files may be YAML or TOML and only need the values they change.
The terminal profile is loaded from ~/.invaders/configs/terminal.yaml
or ./configs/terminal.yaml when present.

Examples:
  invaders config > my-rules.yaml
  invaders config --profile window --format toml > window.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagProfile, "profile", "terminal", "Profile: terminal or window")
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) {
	profile := config.Profile(flagProfile)
	if profile != config.ProfileTerminal && profile != config.ProfileWindow {
		fmt.Fprintf(os.Stderr, "Error: unknown profile %q\n", flagProfile)
		os.Exit(1)
	}

	switch flagFormat {
	case "yaml":
		os.Stdout.Write(config.GetDefaultYAML(profile))
	case "toml":
		if err := toml.NewEncoder(os.Stdout).Encode(config.Default(profile)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", flagFormat)
		os.Exit(1)
	}
}
