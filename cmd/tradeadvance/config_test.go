package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := loadConfig(filepath.Join(home, "missing.yml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.SaveExt != ".sav" {
		t.Fatalf("SaveExt = %q, want .sav", cfg.SaveExt)
	}
	if cfg.Backend != backendTerminal {
		t.Fatalf("Backend = %q, want %q", cfg.Backend, backendTerminal)
	}
	if cfg.FPS != 60 {
		t.Fatalf("FPS = %d, want 60", cfg.FPS)
	}
	if cfg.Language != "en" || cfg.Skin != defaultSkin {
		t.Fatalf("Language, Skin = %q, %q", cfg.Language, cfg.Skin)
	}
	if !strings.HasPrefix(cfg.SaveDir, home) {
		t.Fatalf("SaveDir = %q, want under %q", cfg.SaveDir, home)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TRADEADVANCE_FPS", "30")

	path := writeConfig(t, "save-dir: /mnt/sd/saves\nskip-animations: true\nlanguage: de\nfps: 45\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.SaveDir != "/mnt/sd/saves" {
		t.Fatalf("SaveDir = %q, want /mnt/sd/saves", cfg.SaveDir)
	}
	if !cfg.SkipAnimations {
		t.Fatalf("SkipAnimations = false, want true")
	}
	if cfg.Language != "de" {
		t.Fatalf("Language = %q, want de", cfg.Language)
	}
	if cfg.FPS != 30 {
		t.Fatalf("FPS = %d, want 30 from the environment", cfg.FPS)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "backend", body: "backend: sdl\n"},
		{name: "fps", body: "fps: 0\n"},
		{name: "extension", body: "save-ext: sav\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			if _, err := loadConfig(writeConfig(t, tt.body)); err == nil {
				t.Fatalf("loadConfig(%q) = nil, want error", tt.body)
			}
		})
	}
}

func TestDefaultSaveDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goos string
		want string
	}{
		{goos: "linux", want: "/home/ash"},
		{goos: "darwin", want: filepath.Join("/home/ash", "Desktop")},
		{goos: "windows", want: filepath.Join("/home/ash", "Desktop")},
	}
	for _, tt := range tests {
		if got := defaultSaveDir(tt.goos, "/home/ash"); got != tt.want {
			t.Fatalf("defaultSaveDir(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestSkinPath(t *testing.T) {
	t.Parallel()

	if got := skinPath("/home/ash", defaultSkin); got != "" {
		t.Fatalf("skinPath(default) = %q, want empty", got)
	}
	want := filepath.Join("/home/ash", ".config", "tradeadvance", "skins", "gameboy.yml")
	if got := skinPath("/home/ash", "gameboy"); got != want {
		t.Fatalf("skinPath(gameboy) = %q, want %q", got, want)
	}
}
