package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in configuration.
// It matches defaults/t2048.yaml.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Spawn: SpawnConfig{
			RankOneProbability: grid.DefaultRankOneProb,
			InitialTiles:       1,
		},
		History: HistoryConfig{
			MaxUndo: 100,
		},
		Display: DisplayConfig{
			Glyphs: GlyphLetters,
			Colors: true,
		},
		Campaign: CampaignConfig{
			ClearTicks: 60,
		},
	}
}
