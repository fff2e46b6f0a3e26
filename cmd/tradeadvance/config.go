package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/tradeadvance/internal/logging"
)

const (
	backendTerminal = "terminal"
	backendEvdev    = "evdev"

	defaultSkin = "default"
)

// appConfig holds everything the binary reads from file, env and flags.
type appConfig struct {
	SaveDir        string `mapstructure:"save-dir"`
	SaveExt        string `mapstructure:"save-ext"`
	Backend        string `mapstructure:"backend"`
	EvdevDevice    string `mapstructure:"evdev-device"`
	FPS            int    `mapstructure:"fps"`
	SkipAnimations bool   `mapstructure:"skip-animations"`
	Language       string `mapstructure:"language"`
	Skin           string `mapstructure:"skin"`
	LogPath        string `mapstructure:"log-path"`
	LogLevel       string `mapstructure:"log-level"`
	Backup         bool   `mapstructure:"backup"`
	BackupDir      string `mapstructure:"backup-dir"`
	BackupKeep     int    `mapstructure:"backup-keep"`
	HistoryPath    string `mapstructure:"history-path"`
}

func configDir(home string) string {
	return filepath.Join(home, ".config", "tradeadvance")
}

// defaultSaveDir is where emulators usually leave saves on each OS.
func defaultSaveDir(goos, home string) string {
	switch goos {
	case "windows", "darwin":
		return filepath.Join(home, "Desktop")
	default:
		return home
	}
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("TRADEADVANCE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("save-dir", defaultSaveDir(runtime.GOOS, home))
	v.SetDefault("save-ext", ".sav")
	v.SetDefault("backend", backendTerminal)
	v.SetDefault("evdev-device", "/dev/input/event0")
	v.SetDefault("fps", 60)
	v.SetDefault("skip-animations", false)
	v.SetDefault("language", "en")
	v.SetDefault("skin", defaultSkin)
	v.SetDefault("log-path", logging.DefaultPath())
	v.SetDefault("log-level", "info")
	v.SetDefault("backup", true)
	v.SetDefault("backup-dir", filepath.Join(home, ".local", "state", "tradeadvance", "backups"))
	v.SetDefault("backup-keep", 10)
	v.SetDefault("history-path", filepath.Join(home, ".local", "state", "tradeadvance", "trades.jsonl"))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir(home), "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.validate()
}

func (c appConfig) validate() error {
	switch c.Backend {
	case backendTerminal, backendEvdev:
	default:
		return fmt.Errorf("backend %q: want %s or %s", c.Backend, backendTerminal, backendEvdev)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if !strings.HasPrefix(c.SaveExt, ".") || len(c.SaveExt) < 2 {
		return fmt.Errorf("save-ext %q must start with a dot", c.SaveExt)
	}
	return nil
}

// skinPath returns the skin file for name, or "" for the built-in skin.
func skinPath(home, name string) string {
	if name == "" || name == defaultSkin {
		return ""
	}
	return filepath.Join(configDir(home), "skins", name+".yml")
}
