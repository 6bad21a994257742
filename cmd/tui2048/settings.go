package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Setting keys double as flag names.
const (
	keyFPS        = "fps"
	keySeed       = "seed"
	keyDB         = "db"
	keyConfig     = "config"
	keyDifficulty = "difficulty"
	keyLogLevel   = "log-level"
	keyLogFile    = "log-file"
	keyShotDir    = "screenshot-dir"
)

const (
	defaultFPS     = 30
	defaultDBPath  = "~/.tui2048/scores.db"
	defaultLogFile = "~/.tui2048/tui2048.log"
	defaultShotDir = "~/.tui2048/screenshots"

	settingsName = "settings"
	envPrefix    = "TUI2048"
)

// Settings holds the resolved command-line settings.
type Settings struct {
	FPS           int    `mapstructure:"fps"`
	Seed          int64  `mapstructure:"seed"`
	DBPath        string `mapstructure:"db"`
	ConfigPath    string `mapstructure:"config"`
	Difficulty    string `mapstructure:"difficulty"`
	LogLevel      string `mapstructure:"log-level"`
	LogFile       string `mapstructure:"log-file"`
	ScreenshotDir string `mapstructure:"screenshot-dir"`
}

// loadSettings resolves settings with precedence flag > env > settings file >
// default. An empty dir means ~/.tui2048.
func loadSettings(cmd *cobra.Command, dir string) (Settings, error) {
	v := viper.New()

	v.SetDefault(keyFPS, defaultFPS)
	v.SetDefault(keySeed, 0)
	v.SetDefault(keyDB, defaultDBPath)
	v.SetDefault(keyConfig, "")
	v.SetDefault(keyDifficulty, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFile, defaultLogFile)
	v.SetDefault(keyShotDir, defaultShotDir)

	if dir == "" {
		home, err := config.ExpandHome("~/" + config.ConfigDirName)
		if err == nil {
			dir = home
		}
	}
	v.SetConfigType("yaml")
	v.SetConfigName(settingsName)
	if dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return Settings{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read %s: %w", filepath.Join(dir, settingsName+".yaml"), err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if s.FPS <= 0 {
		s.FPS = defaultFPS
	}
	return s, nil
}

// gameConfig loads the game config file and applies the difficulty preset.
func (s Settings) gameConfig() (config.T2048Config, error) {
	preset, err := config.ParseDifficulty(s.Difficulty)
	if err != nil {
		return config.T2048Config{}, err
	}
	cfg, err := config.LoadT2048(s.ConfigPath)
	if err != nil {
		return config.T2048Config{}, err
	}
	config.ApplyT2048Preset(&cfg, preset)
	return cfg, nil
}
