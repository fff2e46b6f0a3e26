package platform

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds terminal key strings to logical keys, with help text for
// the on-screen hints.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Escape key.Binding

	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "backspace", "q"),
			key.WithHelp("esc", "back"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Resolve maps a decoded terminal key to a logical key. ok is false for
// keys with no binding.
func (k KeyMap) Resolve(msg tea.KeyMsg) (Key, bool, error) {
	switch {
	case key.Matches(msg, k.ForceQuit):
		return 0, false, ErrInterrupted
	case key.Matches(msg, k.Up):
		return KeyUp, true, nil
	case key.Matches(msg, k.Down):
		return KeyDown, true, nil
	case key.Matches(msg, k.Left):
		return KeyLeft, true, nil
	case key.Matches(msg, k.Right):
		return KeyRight, true, nil
	case key.Matches(msg, k.Enter):
		return KeyEnter, true, nil
	case key.Matches(msg, k.Escape):
		return KeyEscape, true, nil
	}
	return 0, false, nil
}

// Hints renders "key desc" pairs for the given bindings, skipping disabled
// ones, the way a help bar shows them.
func Hints(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
