// tui2048 plays the 2048 sliding-tile puzzle in the terminal.
//
// Usage:
//
//	tui2048 list              - List available modes
//	tui2048 play [mode]       - Play campaign (default) or endless
//	tui2048 menu              - Interactive mode picker
//	tui2048 scores [mode]     - Show high scores and stats
//	tui2048 simulate          - Replay a move string headlessly
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.tui2048/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination, "-" for stderr
//
// Every global flag can also be set in ~/.tui2048/settings.yaml or through
// a TUI2048_ environment variable (TUI2048_LOG_LEVEL=debug).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 in your terminal",
	Long: `tui2048 is a terminal version of the 2048 sliding-tile puzzle.

Slide the tiles, merge equal pairs and reach the level goal. The campaign
has ten levels with rising targets; endless mode just keeps going.

Available commands:
  list      - Show available modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  scores    - View high scores
  simulate  - Replay moves without a terminal UI

Examples:
  tui2048 menu
  tui2048 play endless --difficulty hard
  tui2048 scores 2048
  tui2048 simulate --seed 7 --moves hhjkl`,
	SilenceUsage: true,
}

func init() {
	addGlobalFlags(rootCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// addGlobalFlags registers the flags that every command shares.
func addGlobalFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.Int(keyFPS, defaultFPS, "Tick rate (frames per second)")
	pf.Int64(keySeed, 0, "RNG seed (0 = random based on time)")
	pf.String(keyDB, defaultDBPath, "Path to scores database")
	pf.String(keyConfig, "", "Path to custom game config YAML")
	pf.String(keyDifficulty, "", "Difficulty preset: easy, normal, hard")
	pf.String(keyLogLevel, "info", "Log level: debug, info, warn, error")
	pf.String(keyLogFile, defaultLogFile, `Log file path ("-" for stderr)`)
	pf.String(keyShotDir, defaultShotDir, "Directory for ctrl+s screenshots (empty disables)")
}
