package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. An empty string means
// no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// RankOneProbabilityForPreset returns the spawn probability for a preset.
// Fewer 4s make the board easier to manage.
func RankOneProbabilityForPreset(preset DifficultyPreset) (float64, bool) {
	switch preset {
	case DifficultyEasy:
		return 0.95, true
	case DifficultyNormal:
		return 0.9, true
	case DifficultyHard:
		return 0.75, true
	default:
		return 0, false
	}
}

// ApplyT2048Preset modifies the config for a difficulty preset.
// An empty preset leaves the config as loaded.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	if p, ok := RankOneProbabilityForPreset(preset); ok {
		cfg.Spawn.RankOneProbability = p
	}

	// Hard mode also limits how far back a player can undo.
	if preset == DifficultyHard && cfg.History.MaxUndo > 1 {
		cfg.History.MaxUndo = 1
	}
}
