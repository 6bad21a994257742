package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores and play statistics. Without a mode every
mode is shown.

Examples:
  tui2048 scores
  tui2048 scores endless --limit 20
  tui2048 scores campaign --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultTopLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	var ids []string
	if len(args) == 1 {
		id, err := resolveMode(args[0])
		if err != nil {
			return err
		}
		ids = []string{id}
	} else {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a mode")
		}
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
	}

	s, err := loadSettings(cmd, "")
	if err != nil {
		return err
	}
	store, err := storage.Open(s.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresClear {
		n, err := store.ClearScores(ids[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d score(s) for %s.\n", n, ids[0])
		return nil
	}

	for i, id := range ids {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := printScores(out, store, id, flagScoresLimit); err != nil {
			return err
		}
	}
	return nil
}

// printScores writes one mode's table and summary line.
func printScores(out io.Writer, store *storage.Store, gameID string, limit int) error {
	title := gameID
	if g, err := registry.Create(gameID); err == nil {
		title = g.Title()
	}

	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "Play 'tui2048 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %-6s  %s\n", "Rank", "Score", "Max Tile", "Moves", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %-6s  %s\n", "----", "-----", "--------", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-8d  %-6d  %s\n",
			i+1, e.Score, e.MaxTile, e.Moves, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Avg: %.0f  Best tile: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestTile)
	return nil
}
