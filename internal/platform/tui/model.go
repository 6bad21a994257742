package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// helpHeight is the number of rows reserved below the game for key hints.
const helpHeight = 1

// resizer is implemented by games that can adapt to a new window size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// statsReporter is implemented by games that track more than a score.
type statsReporter interface {
	MaxTile() int
	Moves() int
}

// Options configures a game session.
type Options struct {
	Store         *storage.Store // nil disables score recording
	Logger        *log.Logger    // nil discards logs
	Config        core.RuntimeConfig
	ScreenshotDir string // empty disables ctrl+s
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	sessionID  string
	shotDir    string
	quitting   bool

	scoreID      int64 // row recorded for the current game, 0 if none
	lastRecorded storage.ScoreEntry
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = core.Max(cfg.ScreenH-helpHeight, 0)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		keys:       NewKeyMapper(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		sessionID:  uuid.NewString(),
		shotDir:    opts.ScreenshotDir,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "session", m.sessionID)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.inputFrame.Has(core.ActionRestart):
		m.inputFrame.Clear()
		m.restart()
	case key.Matches(msg, m.keys.Game.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else if path != "" {
			m.logger.Info("screenshot saved", "path", path)
		}
	}

	return m, nil
}

// restart begins a new game with a fresh seed. Allowed at any time.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreID = 0
	m.lastRecorded = storage.ScoreEntry{}
	m.logger.Debug("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.recordScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordScore stores the finished game. A game resumed through undo that
// ends again updates its existing row.
func (m *Model) recordScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	entry := storage.ScoreEntry{
		GameID:    m.game.ID(),
		SessionID: m.sessionID,
		Score:     m.gameState.Score,
	}
	if s, ok := m.game.(statsReporter); ok {
		entry.MaxTile = s.MaxTile()
		entry.Moves = s.Moves()
	}

	if m.scoreID != 0 {
		if m.lastRecorded == entry {
			return
		}
		if err := m.store.UpdateScore(m.scoreID, entry); err != nil {
			m.logger.Error("could not update score", "error", err)
			return
		}
		m.lastRecorded = entry
		return
	}

	id, err := m.store.SaveScore(entry)
	if err != nil {
		m.logger.Error("could not save score", "error", err)
		return
	}
	m.scoreID = id
	m.lastRecorded = entry
	m.logger.Info("score saved", "game", entry.GameID, "score", entry.Score, "max_tile", entry.MaxTile)
}

// saveScreenshot writes the plain-text screen to the screenshot directory.
// Returns an empty path when screenshots are disabled.
func (m *Model) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", nil
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", m.shotDir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the game and a help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Game))
}

// GameState returns the state observed on the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
