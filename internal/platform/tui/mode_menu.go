package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// menuOption is one line of the mode menu.
type menuOption struct {
	label  string
	gameID string // empty for options that open a sub-screen
}

var modeOptions = []menuOption{
	{label: "Campaign (10 levels)", gameID: t2048.IDCampaign},
	{label: "Endless Mode", gameID: t2048.IDEndless},
	{label: "Select Level..."},
	{label: "High Scores"},
}

const (
	optionSelectLevel = 2
	optionHighScores  = 3
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Level           int // 0 = from the beginning, 1-10 = campaign start level
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// MenuModel lets users choose a mode and starting level.
type MenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	help          help.Model
	best          map[string]int // high score per game id
	result        MenuResult
	done          bool
}

// NewMenuModel creates a new mode menu. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	best := make(map[string]int)
	if store != nil {
		for _, opt := range modeOptions {
			if opt.gameID == "" {
				continue
			}
			if hs, err := store.HighScore(opt.gameID); err == nil {
				best[opt.gameID] = hs
			}
		}
	}

	return MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		best:      best,
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeSelectKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) finish(r MenuResult) (tea.Model, tea.Cmd) {
	r.Config = m.config
	m.result = r
	m.done = true
	return m, tea.Quit
}

func (m MenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		return m.finish(MenuResult{Quit: true})
	case MenuActionUp:
		m.cursor = core.Max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = core.Min(m.cursor+1, len(modeOptions)-1)
	case MenuActionScoreboard:
		return m.finish(MenuResult{WantsScoreboard: true})
	case MenuActionSelect:
		switch m.cursor {
		case optionSelectLevel:
			m.inLevelSelect = true
			m.levelCursor = 0
		case optionHighScores:
			return m.finish(MenuResult{WantsScoreboard: true})
		default:
			return m.finish(MenuResult{GameID: modeOptions[m.cursor].gameID})
		}
	}
	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		return m.finish(MenuResult{Quit: true})
	case MenuActionUp:
		m.levelCursor = core.Max(m.levelCursor-1, 0)
	case MenuActionDown:
		m.levelCursor = core.Min(m.levelCursor+1, t2048.LevelCount()-1)
	case MenuActionSelect:
		return m.finish(MenuResult{GameID: t2048.IDCampaign, Level: m.levelCursor + 1})
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the mode or level selection.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	if m.inLevelSelect {
		b.WriteString(centerText(titleStyle.Render("SELECT LEVEL"), m.width))
		b.WriteString("\n\n")

		targets := t2048.LevelTargets()
		for i, name := range t2048.LevelNames() {
			line := fmt.Sprintf("%s%2d. %s (Target: %d)", cursorMark(i == m.levelCursor), i+1, name, targets[i])
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText("Select game mode:", m.width))
		b.WriteString("\n\n")

		for i, opt := range modeOptions {
			line := cursorMark(i == m.cursor) + opt.label
			if hs := m.best[opt.gameID]; hs > 0 {
				line += fmt.Sprintf("  [best %d]", hs)
			}
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keyMapper.Menu)), m.width))
	return b.String()
}

func cursorMark(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// Result returns the menu outcome once the menu has closed.
func (m MenuModel) Result() MenuResult {
	if !m.done {
		return MenuResult{Config: m.config, Quit: true}
	}
	return m.result
}

// RunMenu runs the mode menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
