package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/capydino/internal/games/dino"
	"github.com/vovakirdan/capydino/internal/platform/tui"
	"github.com/vovakirdan/capydino/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs and the persisted high score.

--clear deletes the recorded runs. The high score shown in the game is kept.

Examples:
  capydino scores
  capydino scores --limit 25
  capydino scores --tui
  capydino scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadGameConfig()
	if err != nil {
		return err
	}

	store, err := openScores()
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(dino.ID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Recorded runs cleared.")
		return nil
	}

	data, err := tui.LoadScoreboard(store, dino.ID, "CapyDino Runner", cfg.HighScore.Key, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	if flagScoresTUI {
		rc := runtimeConfig()
		return tui.RunScoreboard(data, rc.ScreenW, rc.ScreenH)
	}

	printScores(cmd.OutOrStdout(), data)
	return nil
}

// printScores writes the plain-text score table.
func printScores(w io.Writer, data tui.ScoreboardData) {
	fmt.Fprintf(w, "High Scores - %s\n", data.Title)
	fmt.Fprintln(w)

	if len(data.Scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'capydino play' to set the first high score!")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-7s  %-10s  %-6s  %s\n", "Rank", "Score", "Difficulty", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-7s  %-10s  %-6s  %s\n", "----", "-----", "----------", "----", "----")

	for i, entry := range data.Scores {
		fmt.Fprintf(w, "  %-4d  %05d    %-10s  %-6s  %s\n",
			i+1, entry.Score, entry.Difficulty, runLength(entry), entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %05d\n", data.HighScore)
}

// runLength converts a run's tick count at 60 ticks per second to a duration.
func runLength(e storage.ScoreEntry) time.Duration {
	return (time.Duration(e.Ticks) * time.Second / 60).Round(time.Second)
}
