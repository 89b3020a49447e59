package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/patricklapgar/Space-Shooter-Game/internal/config"
	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
	"github.com/patricklapgar/Space-Shooter-Game/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The play field is the terminal size.

Controls:
  A/D or Left/Right  - Move
  W/S or Up/Down     - Move up/down
  Space              - Fire
  P                  - Pause
  R                  - Restart (after game over)
  B/Esc              - Leave (while paused or after game over)
  Q/Ctrl+C           - Quit
  Ctrl+S             - Save a screenshot to ~/.invaders/screenshots

Difficulty options:
  easy   - Two extra lives, enemies fire less often
  normal - Rules as configured
  hard   - Two lives fewer, enemies fire more often, starts at 50% difficulty
  fixed  - No progression, enemies keep their starting speed

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --config ./my-rules.toml
  invaders play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

// terminalConfig builds the runtime config from the terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger("invaders")
	preset := config.ParsePreset(flagDifficulty)

	rules, err := loadRules(config.ProfileTerminal, flagConfig, preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sound := newSound(flagSound, logger)

	_, runErr := tui.Run(tui.PlayOptions{
		Rules:      rules,
		Difficulty: preset,
		Player:     flagName,
		Sound:      sound,
		Logger:     logger,
	}, store, terminalConfig())

	// Close store before potential exit
	sound.Cleanup()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
