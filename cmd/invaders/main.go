// invaders is a space shooter for the terminal and the desktop.
//
// Usage:
//
//	invaders play            - Play in the terminal
//	invaders window          - Play in a desktop window
//	invaders menu            - Title menu with difficulty picker and high scores
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show the best runs
//	invaders config          - Print the default rules
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.invaders/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/patricklapgar/Space-Shooter-Game/internal/audio"
	"github.com/patricklapgar/Space-Shooter-Game/internal/config"
	"github.com/patricklapgar/Space-Shooter-Game/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagName     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders - shoot down waves of enemy ships",
	Long: `Space Invaders is a space shooter: move your ship along the bottom
of the screen and shoot down waves of descending enemy ships before they
reach the bottom. Every wave is larger than the last.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Title menu with difficulty picker
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the default rules

Examples:
  invaders play
  invaders play --difficulty hard
  invaders window --scale 0.8
  invaders serve --ssh :2222
  invaders scores --difficulty normal`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", os.Getenv("USER"), "Player name recorded with each run")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the stderr logger for a command.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadRules loads the rules for a profile and applies the preset.
func loadRules(profile config.Profile, path string, preset config.DifficultyPreset) (config.InvadersConfig, error) {
	rules, err := config.Load(profile, path)
	if err != nil {
		return rules, err
	}
	config.ApplyPreset(&rules, preset)
	return rules, nil
}

// openStore opens the scores database. Playing works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// newSound opens the speaker when enabled. Without a device the game
// plays silently.
func newSound(enabled bool, logger *log.Logger) *audio.SoundManager {
	if !enabled {
		return nil
	}
	sm := audio.NewSoundManager(audio.DefaultAudioConfig())
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return sm
}
