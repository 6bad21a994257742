// Package t2048 drives the sliding-tile puzzle on top of package grid:
// campaign and endless modes, undo history, rendering and snapshots.
package t2048

import "github.com/vovakirdan/tui-2048/internal/games/t2048/grid"

// Level defines a campaign level by the tile rank that clears it.
type Level struct {
	ID         int
	Name       string
	TargetRank int     // Rank to reach; rank 7 is the 128 tile
	Pressure   float64 // Subtracted from the rank-one spawn probability
}

// Levels defines the 10 campaign levels with increasing difficulty.
// Ranks above 13 (8192) are not realistic on a 4x4 grid, so the last levels
// raise spawn pressure instead.
var Levels = []Level{
	{ID: 1, Name: "Warm-up", TargetRank: 7},
	{ID: 2, Name: "Getting Started", TargetRank: 8},
	{ID: 3, Name: "Building Momentum", TargetRank: 9},
	{ID: 4, Name: "The Climb", TargetRank: 10},
	{ID: 5, Name: "Classic 2048", TargetRank: 11},
	{ID: 6, Name: "Beyond Limits", TargetRank: 12, Pressure: 0.02},
	{ID: 7, Name: "Master Class", TargetRank: 13, Pressure: 0.05},
	{ID: 8, Name: "Expert Challenge", TargetRank: 13, Pressure: 0.08},
	{ID: 9, Name: "Grandmaster", TargetRank: 13, Pressure: 0.10},
	{ID: 10, Name: "Ultimate Champion", TargetRank: 13, Pressure: 0.15},
}

// Target returns the tile value that clears the level.
func (l Level) Target() int {
	return grid.Occupied(l.TargetRank).Value()
}

// RankOneProbability applies the level pressure to a base probability.
func (l Level) RankOneProbability(base float64) float64 {
	p := base - l.Pressure
	if p < 0 {
		return 0
	}
	return p
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelTargets returns the target tile values of all levels.
func LevelTargets() []int {
	targets := make([]int, len(Levels))
	for i, lvl := range Levels {
		targets[i] = lvl.Target()
	}
	return targets
}
