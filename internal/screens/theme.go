package screens

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Theme holds the colours (ANSI 256 codes) and glyphs a skin may change.
type Theme struct {
	Splash      uint8 `yaml:"splash"`
	SplashFlash uint8 `yaml:"splash-flash"`
	Menu        uint8 `yaml:"menu"`
	Exit        uint8 `yaml:"exit"`
	ExitFlash   uint8 `yaml:"exit-flash"`

	ProgressFill  string `yaml:"progress-fill"`
	ProgressTip   string `yaml:"progress-tip"`
	ProgressEmpty string `yaml:"progress-empty"`
}

// DefaultTheme is the built-in skin.
func DefaultTheme() Theme {
	return Theme{
		Splash:        5,
		SplashFlash:   13,
		Menu:          15,
		Exit:          3,
		ExitFlash:     11,
		ProgressFill:  "/",
		ProgressTip:   "|",
		ProgressEmpty: " ",
	}
}

// LoadTheme reads a skin file over the default theme. A missing file
// yields the default theme.
func LoadTheme(path string) (Theme, error) {
	th := DefaultTheme()
	if path == "" {
		return th, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return th, nil
		}
		return th, fmt.Errorf("theme: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&th); err != nil {
		return DefaultTheme(), fmt.Errorf("theme: %s: %w", path, err)
	}
	for name, g := range map[string]string{
		"progress-fill":  th.ProgressFill,
		"progress-tip":   th.ProgressTip,
		"progress-empty": th.ProgressEmpty,
	} {
		if utf8.RuneCountInString(g) != 1 {
			return DefaultTheme(), fmt.Errorf("theme: %s: %s must be a single character", path, name)
		}
	}
	return th, nil
}

func glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
