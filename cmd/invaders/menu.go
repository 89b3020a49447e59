package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/patricklapgar/Space-Shooter-Game/internal/config"
	"github.com/patricklapgar/Space-Shooter-Game/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick a difficulty, start a game or browse the high scores. After a game
ends, you return to the menu to play again.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right      - Change difficulty
  Enter/Space     - Select
  Tab             - High scores
  Q               - Quit

Examples:
  invaders menu
  invaders menu --fps 30
  invaders menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules (YAML or TOML)")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Preselected difficulty: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger("invaders")

	// Validate the rules once before showing the menu
	if _, err := loadRules(config.ProfileTerminal, flagConfig, config.DifficultyNormal); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sound := newSound(flagSound, logger)
	cfg := terminalConfig()
	preset := config.ParsePreset(flagDifficulty)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, string(preset))
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		rules, err := loadRules(config.ProfileTerminal, flagConfig, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// New seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		result, err := tui.Run(tui.PlayOptions{
			Rules:        rules,
			Difficulty:   preset,
			Player:       flagName,
			Sound:        sound,
			Logger:       logger,
			ReturnToMenu: true,
		}, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !result.BackToMenu {
			break // User quit from the game
		}
	}

	// Cleanup
	sound.Cleanup()
	if store != nil {
		store.Close()
	}
}
