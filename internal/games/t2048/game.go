package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registry ids.
const (
	IDCampaign = "2048"
	IDEndless  = "2048_endless"
)

// Game implements the 2048 puzzle game.
type Game struct {
	mode Mode
	cfg  config.T2048Config
	rng  *rand.Rand
	tick uint64

	grid        grid.Grid
	history     *History
	moves       int
	undos       int
	levelIndex  int // Current level (0-indexed)
	targetRank  int // 0 in endless mode
	rankOneProb float64

	screenW int
	screenH int

	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// Package-level settings picked up by games created through the registry.
var (
	selectedStartLevel int
	activeConfig       = config.DefaultT2048Config()
)

// SetStartLevel sets the starting level (1-10). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetConfig replaces the configuration used by games created afterwards.
func SetConfig(cfg config.T2048Config) {
	activeConfig = cfg
}

// ActiveConfig returns the configuration new games will use.
func ActiveConfig() config.T2048Config {
	return activeConfig
}

// New creates a new campaign mode game.
func New() *Game {
	return NewWithConfig(ModeCampaign, activeConfig)
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return NewWithConfig(ModeEndless, activeConfig)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(mode Mode, cfg config.T2048Config) *Game {
	return &Game{
		mode: mode,
		cfg:  cfg,
	}
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.moves = 0
	g.undos = 0
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0
	g.history = NewHistory(g.cfg.History.MaxUndo)

	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}
	g.loadLevel()

	g.grid = grid.New(grid.DefaultSize)
	for range g.cfg.Spawn.InitialTiles {
		g.spawnTile()
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// loadLevel sets up the current level parameters.
func (g *Game) loadLevel() {
	base := g.cfg.Spawn.RankOneProbability
	if g.mode == ModeEndless {
		g.targetRank = 0
		g.rankOneProb = base
		return
	}

	level := GetLevel(g.levelIndex)
	if level == nil {
		level = GetLevel(LevelCount() - 1)
	}

	g.targetRank = level.TargetRank
	g.rankOneProb = level.RankOneProbability(base)
}

func (g *Game) spawnTile() {
	g.grid, _ = g.grid.SpawnRandomTileWithProb(g.rng, g.rankOneProb)
}

// Resize updates the screen dimensions without touching the grid.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minScreenSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return g.result(false)
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result(false)
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.cfg.Campaign.ClearTicks {
			g.advanceLevel()
		}
		return g.result(false)
	}

	if in.Has(core.ActionUndo) && !g.won {
		return g.result(g.Undo())
	}

	if g.gameOver || g.won {
		return g.result(false)
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			return g.result(g.Move(directionFor(a)))
		}
	}

	return g.result(false)
}

func (g *Game) result(moved bool) core.StepResult {
	return core.StepResult{State: g.State(), Moved: moved}
}

func directionFor(a core.Action) grid.Direction {
	switch a {
	case core.ActionUp:
		return grid.Up
	case core.ActionDown:
		return grid.Down
	case core.ActionLeft:
		return grid.Left
	default:
		return grid.Right
	}
}

// Move slides the grid. A move that changes nothing is ignored and does not
// spawn a tile. Reports whether the grid changed.
func (g *Game) Move(dir grid.Direction) bool {
	if g.gameOver || g.won || g.levelCleared {
		return false
	}

	next, moved := g.grid.Move(dir)
	if !moved {
		return false
	}

	g.history.Push(g.grid)
	g.grid = next
	g.moves++
	g.spawnTile()

	if g.mode == ModeCampaign && g.targetRank > 0 && g.grid.MaxRank() >= g.targetRank {
		g.levelCleared = true
		g.levelClearTicks = 0
		return true
	}

	g.gameOver = !g.grid.HasPossibleMoves()
	return true
}

// Undo restores the grid from before the last move, including its score.
// Reports whether anything was undone.
func (g *Game) Undo() bool {
	prev, ok := g.history.Pop()
	if !ok {
		return false
	}
	g.grid = prev
	g.moves--
	g.undos++
	g.gameOver = false
	return true
}

// advanceLevel moves to the next level, keeping the grid and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
	g.gameOver = !g.grid.HasPossibleMoves()
}

// Grid returns the current grid.
func (g *Game) Grid() grid.Grid {
	return g.grid
}

// MaxTile returns the value of the highest tile on the grid.
func (g *Game) MaxTile() int {
	return grid.Occupied(g.grid.MaxRank()).Value()
}

// Moves returns the number of moves on the current line of play.
func (g *Game) Moves() int {
	return g.moves
}

// UndoDepth returns how many moves can still be undone.
func (g *Game) UndoDepth() int {
	if g.history == nil {
		return 0
	}
	return g.history.Len()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.grid.Score(),
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
