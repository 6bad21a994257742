package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesCode(t *testing.T) {
	cfg, err := parseT2048(defaultT2048YAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("embedded default = %+v, want %+v", cfg, DefaultT2048Config())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("spawn:\n  rank_one_probability: 0.5\ndisplay:\n  glyphs: numbers\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048() failed: %v", err)
	}

	if cfg.Spawn.RankOneProbability != 0.5 {
		t.Errorf("RankOneProbability = %v, want 0.5", cfg.Spawn.RankOneProbability)
	}
	if cfg.Display.Glyphs != GlyphNumbers {
		t.Errorf("Glyphs = %q, want numbers", cfg.Display.Glyphs)
	}
	// Keys absent from the file keep their defaults
	if cfg.History.MaxUndo != 100 {
		t.Errorf("MaxUndo = %d, want default 100", cfg.History.MaxUndo)
	}
	if cfg.Spawn.InitialTiles != 1 {
		t.Errorf("InitialTiles = %d, want default 1", cfg.Spawn.InitialTiles)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadT2048(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("spawn: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadT2048(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("spawn:\n  rank_one_probability: 1.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadT2048(invalid); err == nil {
		t.Error("out-of-range probability should be an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*T2048Config)
		ok     bool
	}{
		{"defaults", func(*T2048Config) {}, true},
		{"negative probability", func(c *T2048Config) { c.Spawn.RankOneProbability = -0.1 }, false},
		{"zero initial tiles", func(c *T2048Config) { c.Spawn.InitialTiles = 0 }, false},
		{"too many initial tiles", func(c *T2048Config) { c.Spawn.InitialTiles = 17 }, false},
		{"negative undo", func(c *T2048Config) { c.History.MaxUndo = -1 }, false},
		{"zero undo", func(c *T2048Config) { c.History.MaxUndo = 0 }, true},
		{"unknown glyphs", func(c *T2048Config) { c.Display.Glyphs = "emoji" }, false},
		{"negative clear ticks", func(c *T2048Config) { c.Campaign.ClearTicks = -5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		prob    float64
		maxUndo int
	}{
		{"", 0.9, 100},
		{DifficultyEasy, 0.95, 100},
		{DifficultyNormal, 0.9, 100},
		{DifficultyHard, 0.75, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultT2048Config()
			ApplyT2048Preset(&cfg, tt.preset)
			if cfg.Spawn.RankOneProbability != tt.prob {
				t.Errorf("RankOneProbability = %v, want %v", cfg.Spawn.RankOneProbability, tt.prob)
			}
			if cfg.History.MaxUndo != tt.maxUndo {
				t.Errorf("MaxUndo = %d, want %d", cfg.History.MaxUndo, tt.maxUndo)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	if p, err := ParseDifficulty(" Hard "); err != nil || p != DifficultyHard {
		t.Errorf("ParseDifficulty(Hard) = %q, %v", p, err)
	}
	if p, err := ParseDifficulty(""); err != nil || p != "" {
		t.Errorf("ParseDifficulty(\"\") = %q, %v", p, err)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("ParseDifficulty(nightmare) should fail")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path.db")
	if err != nil || got != "/abs/path.db" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/x/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, "x", "scores.db") {
		t.Errorf("ExpandHome(~/x/scores.db) = %q", got)
	}
}
