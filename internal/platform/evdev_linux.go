//go:build linux

package platform

import (
	"errors"
	"fmt"
	"io"
	"os"

	evdev "github.com/holoplot/go-evdev"
)

var evdevKeys = map[evdev.EvCode]Key{
	evdev.KEY_UP:        KeyUp,
	evdev.KEY_DOWN:      KeyDown,
	evdev.KEY_LEFT:      KeyLeft,
	evdev.KEY_RIGHT:     KeyRight,
	evdev.KEY_ENTER:     KeyEnter,
	evdev.KEY_KPENTER:   KeyEnter,
	evdev.KEY_SPACE:     KeyEnter,
	evdev.KEY_ESC:       KeyEscape,
	evdev.KEY_BACKSPACE: KeyEscape,
}

// EvdevInput reads key presses straight from a Linux input device, for
// handhelds and kiosks without a usable TTY keyboard.
type EvdevInput struct {
	dev  *evdev.InputDevice
	path string
}

var _ Input = (*EvdevInput)(nil)

func OpenEvdev(path string) (*EvdevInput, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("evdev: open %s: %w", path, err)
	}
	return &EvdevInput{dev: dev, path: path}, nil
}

// WaitInput returns on key down only; releases and auto-repeat are
// dropped.
func (e *EvdevInput) WaitInput() (Key, error) {
	for {
		ev, err := e.dev.ReadOne()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return 0, ErrInputClosed
			}
			return 0, fmt.Errorf("evdev: read %s: %w", e.path, err)
		}
		if ev.Type != evdev.EV_KEY || ev.Value != 1 {
			continue
		}
		if k, ok := evdevKeys[ev.Code]; ok {
			return k, nil
		}
	}
}

func (e *EvdevInput) Close() error { return e.dev.Close() }
