package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// app bundles what every command needs: settings, logger and score store.
type app struct {
	settings  Settings
	logger    *log.Logger
	logCloser io.Closer
	store     *storage.Store
}

// newApp resolves settings and opens the logger. When withStore is set the
// score database is opened too; failure to open it is logged and the app
// continues without scores.
func newApp(cmd *cobra.Command, withStore bool) (*app, error) {
	s, err := loadSettings(cmd, "")
	if err != nil {
		return nil, err
	}

	logger, closer, err := newLogger(s.LogLevel, s.LogFile)
	if err != nil {
		return nil, err
	}

	a := &app{settings: s, logger: logger, logCloser: closer}
	if withStore {
		store, err := storage.Open(s.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			logger.Warn("scores disabled", "db", s.DBPath, "error", err)
		} else {
			a.store = store
		}
	}
	return a, nil
}

// Close releases the store and the log file.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Error("closing scores database", "error", err)
		}
	}
	_ = a.logCloser.Close()
}

// runtimeConfig sizes the game to the current terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: a.settings.FPS,
		Seed:     a.settings.Seed,
	}
}

// play runs one game session. level > 0 starts the campaign at that level.
func (a *app) play(gameID string, level int, rc core.RuntimeConfig) error {
	cfg, err := a.settings.gameConfig()
	if err != nil {
		return err
	}
	t2048.SetConfig(cfg)
	if level > 0 {
		t2048.SetStartLevel(level)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	shotDir, err := config.ExpandHome(a.settings.ScreenshotDir)
	if err != nil {
		return err
	}

	a.logger.Info("starting game", "game", gameID, "level", level, "difficulty", a.settings.Difficulty)
	return tui.Run(game, tui.Options{
		Store:         a.store,
		Logger:        a.logger,
		Config:        rc,
		ScreenshotDir: shotDir,
	})
}

// modeAliases lets users type a mode name instead of its id.
var modeAliases = map[string]string{
	"campaign": t2048.IDCampaign,
	"endless":  t2048.IDEndless,
}

// resolveMode maps a mode name or id to a registered id.
func resolveMode(arg string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(arg))
	if alias, ok := modeAliases[id]; ok {
		id = alias
	}
	if registry.Exists(id) {
		return id, nil
	}

	msg := fmt.Sprintf("unknown mode %q", arg)
	if hint := registry.Suggest(id); hint != "" {
		msg += fmt.Sprintf(", did you mean %q?", hint)
	}
	return "", fmt.Errorf("%s (run 'tui2048 list' to see available modes)", msg)
}
