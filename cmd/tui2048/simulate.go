package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid"
)

var (
	flagSimMoves   string
	flagSimVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay a move string without the terminal UI",
	Long: `Play an endless game headlessly and print the grid as text.

Moves are one character each:
  h/a  left    j/s  down    k/w  up    l/d  right    b/u  undo
Spaces are ignored. The same --seed always gives the same game.

Examples:
  tui2048 simulate --seed 42 --moves "hhjj kkll"
  tui2048 simulate --seed 42 --moves hjklb --verbose`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimMoves, "moves", "", "Moves to replay")
	simulateCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Print the grid after every move")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd, "")
	if err != nil {
		return err
	}
	cfg, err := s.gameConfig()
	if err != nil {
		return err
	}

	g := t2048.NewWithConfig(t2048.ModeEndless, cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: s.Seed})

	return replay(cmd.OutOrStdout(), g, flagSimMoves, flagSimVerbose)
}

// simMoves maps move characters to directions.
var simMoves = map[rune]grid.Direction{
	'h': grid.Left, 'a': grid.Left,
	'j': grid.Down, 's': grid.Down,
	'k': grid.Up, 'w': grid.Up,
	'l': grid.Right, 'd': grid.Right,
}

// replay applies moves to g and prints the final grid, or every grid when
// verbose. Moves that change nothing, including moves after game over,
// are not an error.
func replay(out io.Writer, g *t2048.Game, moves string, verbose bool) error {
	if verbose {
		fmt.Fprint(out, t2048.FormatGrid(g.Grid()))
	}

	for i, r := range moves {
		var label string
		var changed bool
		switch {
		case r == ' ':
			continue
		case r == 'b' || r == 'u':
			label = "undo"
			changed = g.Undo()
		default:
			dir, ok := simMoves[r]
			if !ok {
				return fmt.Errorf("move %d: unknown move %q", i+1, r)
			}
			label = dir.String()
			changed = g.Move(dir)
		}

		if verbose {
			status := ""
			if !changed {
				status = " (no change)"
			}
			fmt.Fprintf(out, "\n%s%s\n", label, status)
			fmt.Fprint(out, t2048.FormatGrid(g.Grid()))
		}
	}

	if !verbose {
		fmt.Fprint(out, t2048.FormatGrid(g.Grid()))
	}
	if g.State().GameOver {
		fmt.Fprintln(out, "Game over.")
	}
	fmt.Fprintf(out, "Score: %d  Max tile: %d  Moves: %d\n", g.Grid().Score(), g.MaxTile(), g.Moves())
	return nil
}
