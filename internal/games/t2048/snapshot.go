package t2048

import "github.com/vovakirdan/tui-2048/internal/games/t2048/grid"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string // "campaign" or "endless"
	Level      int    // 1-indexed
	TargetRank int    // 0 in endless mode
	Target     int    // Tile value of TargetRank
	Score      int
	Ranks      []int // Row-major, 0 for empty
	MaxTile    int
	Moves      int
	UndoDepth  int
	State      GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Level:      g.levelIndex + 1,
		TargetRank: g.targetRank,
		Target:     grid.Occupied(g.targetRank).Value(),
		Score:      g.grid.Score(),
		Ranks:      g.grid.Ranks(),
		MaxTile:    g.MaxTile(),
		Moves:      g.moves,
		UndoDepth:  g.UndoDepth(),
		State:      state,
	}
}
