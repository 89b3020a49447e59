package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/patricklapgar/Space-Shooter-Game/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
	flagScoresClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs, optionally for one difficulty.

Examples:
  invaders scores
  invaders scores --difficulty hard
  invaders scores --limit 25
  invaders scores --difficulty easy --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show runs of this difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the runs instead of showing them")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	label := flagScoresDifficulty
	if label == "" {
		label = "all difficulties"
	}

	if flagScoresClear {
		if err := store.ClearRuns(flagScoresDifficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs for %s\n", label)
		return
	}

	runs, err := store.TopRuns(flagScoresDifficulty, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", label)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-6s  %-10s  %s\n", "Rank", "Player", "Score", "Level", "Kills", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-6s  %-10s  %s\n", "----", "------", "-----", "-----", "-----", "----------", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-6d  %-6d  %-10s  %s\n",
			i+1, r.Player, r.Score, r.Level, r.Kills, r.Difficulty, dateStr)
	}

	// Show summary
	fmt.Println()
	if stats, err := store.Stats(flagScoresDifficulty); err == nil {
		fmt.Printf("Runs: %d  Best: %d  Best level: %d  Average: %.0f  Total kills: %d\n",
			stats.Runs, stats.BestScore, stats.BestLevel, stats.AvgScore, stats.TotalKills)
	}
}
