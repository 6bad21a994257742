package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play 2048",
	Long: `Start playing the given mode. Modes are "campaign" (id 2048, the
default) and "endless" (id 2048_endless).

Controls:
  Arrows/hjkl/wasd - Slide tiles
  B/U              - Undo
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 95% of new tiles are 2s
  normal - 90% of new tiles are 2s
  hard   - 75% of new tiles are 2s, one undo step

Examples:
  tui2048 play
  tui2048 play endless --difficulty hard
  tui2048 play campaign --level 5
  tui2048 play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (1-10)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := t2048.IDCampaign
	if len(args) == 1 {
		id, err := resolveMode(args[0])
		if err != nil {
			return err
		}
		gameID = id
	}

	if flagLevel < 0 || flagLevel > t2048.LevelCount() {
		return fmt.Errorf("level must be between 1 and %d", t2048.LevelCount())
	}
	if flagLevel > 0 && gameID != t2048.IDCampaign {
		return fmt.Errorf("--level only applies to the campaign")
	}

	a, err := newApp(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.play(gameID, flagLevel, a.runtimeConfig())
}
