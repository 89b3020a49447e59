package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/patricklapgar/Space-Shooter-Game/internal/config"
	"github.com/patricklapgar/Space-Shooter-Game/internal/platform/window"
)

var (
	flagAssets        string
	flagScale         float64
	flagWindowConfig  string
	flagWindowPreset  string
	flagWindowNoSound bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 750x750 window and play with image sprites.

Sprites come from --assets when given. The directory must hold
pixel_ship_yellow.png, pixel_ship_{red,green,blue}_small.png,
pixel_laser_{yellow,red,green,blue}.png and background-black.png.
Without it the built-in pixel art is used.

Controls:
  Space or click     - Start from the title screen
  A/D/W/S or arrows  - Move
  Space              - Fire
  P                  - Pause
  R                  - Restart (after game over)
  Esc                - Title screen (while paused or after game over)
  Q                  - Quit

Examples:
  invaders window
  invaders window --assets ./assets --scale 0.8
  invaders window --difficulty easy --no-sound`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with sprite images (built-in art if empty)")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 750x750 field")
	windowCmd.Flags().StringVar(&flagWindowConfig, "config", "", "Path to custom rules (YAML or TOML)")
	windowCmd.Flags().StringVar(&flagWindowPreset, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	windowCmd.Flags().BoolVar(&flagWindowNoSound, "no-sound", false, "Disable sound effects")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger("invaders-window")
	preset := config.ParsePreset(flagWindowPreset)

	rules, err := loadRules(config.ProfileWindow, flagWindowConfig, preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sound := newSound(!flagWindowNoSound, logger)

	runErr := window.Run(window.Options{
		Rules:      rules,
		Difficulty: preset,
		Player:     flagName,
		AssetsDir:  flagAssets,
		Scale:      flagScale,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Store:      store,
		Sound:      sound,
		Logger:     logger,
	})

	sound.Cleanup()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
