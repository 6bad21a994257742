// Package config loads the YAML game configuration and applies difficulty
// presets.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid"
)

// GlyphStyle selects how tiles are labelled on screen.
type GlyphStyle string

const (
	GlyphLetters GlyphStyle = "letters"
	GlyphNumbers GlyphStyle = "numbers"
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Spawn    SpawnConfig    `yaml:"spawn"`
	History  HistoryConfig  `yaml:"history"`
	Display  DisplayConfig  `yaml:"display"`
	Campaign CampaignConfig `yaml:"campaign"`
}

// SpawnConfig controls new-tile placement.
type SpawnConfig struct {
	RankOneProbability float64 `yaml:"rank_one_probability"`
	InitialTiles       int     `yaml:"initial_tiles"`
}

// HistoryConfig controls undo depth.
type HistoryConfig struct {
	MaxUndo int `yaml:"max_undo"`
}

// DisplayConfig controls tile rendering.
type DisplayConfig struct {
	Glyphs GlyphStyle `yaml:"glyphs"`
	Colors bool       `yaml:"colors"`
}

// CampaignConfig controls level transitions.
type CampaignConfig struct {
	ClearTicks int `yaml:"clear_ticks"`
}

// Validate reports the first out-of-range field.
func (c T2048Config) Validate() error {
	p := c.Spawn.RankOneProbability
	if p < 0 || p > 1 {
		return fmt.Errorf("config: spawn.rank_one_probability %v outside [0, 1]", p)
	}
	maxTiles := grid.DefaultSize * grid.DefaultSize
	if c.Spawn.InitialTiles < 1 || c.Spawn.InitialTiles > maxTiles {
		return fmt.Errorf("config: spawn.initial_tiles %d outside [1, %d]", c.Spawn.InitialTiles, maxTiles)
	}
	if c.History.MaxUndo < 0 {
		return fmt.Errorf("config: history.max_undo %d is negative", c.History.MaxUndo)
	}
	switch c.Display.Glyphs {
	case GlyphLetters, GlyphNumbers:
	default:
		return fmt.Errorf("config: display.glyphs %q is not letters or numbers", c.Display.Glyphs)
	}
	if c.Campaign.ClearTicks < 0 {
		return fmt.Errorf("config: campaign.clear_ticks %d is negative", c.Campaign.ClearTicks)
	}
	return nil
}
