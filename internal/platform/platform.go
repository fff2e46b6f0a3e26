// Package platform holds the driver interfaces the navigator and screens
// talk to, and the backends that implement them.
package platform

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInputClosed is returned by WaitInput once the input source is
	// exhausted.
	ErrInputClosed = errors.New("platform: input closed")
	// ErrInterrupted is returned by WaitInput when the user asks to quit
	// from outside the UI (ctrl+c on a terminal).
	ErrInterrupted = errors.New("platform: interrupted")
)

// IsShutdown reports whether err means the input driver is gone.
func IsShutdown(err error) bool {
	return errors.Is(err, ErrInputClosed) || errors.Is(err, ErrInterrupted)
}

// Key is one of the six logical inputs every backend produces.
type Key int

const (
	KeyUp Key = iota + 1
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

var keyNames = map[Key]string{
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyEnter:  "enter",
	KeyEscape: "esc",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey is the inverse of Key.String. "escape" is accepted as well.
func ParseKey(s string) (Key, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "escape" {
		return KeyEscape, nil
	}
	for k, name := range keyNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("platform: unknown key %q", s)
}

// Console receives frames. Print appends to the pending frame and Flush
// makes it visible.
type Console interface {
	Init() error
	Print(s string)
	Clear()
	SetColor(code uint8)
	Flush() error
	Dispose() error
}

// Input blocks until the next key press.
type Input interface {
	WaitInput() (Key, error)
}

// Sleeper paces animations.
type Sleeper interface {
	Sleep(d time.Duration)
}

// RealSleeper sleeps on the wall clock.
type RealSleeper struct{}

func (RealSleeper) Sleep(d time.Duration) { time.Sleep(d) }

// NoSleep returns immediately and counts the requested frames.
type NoSleep struct {
	Calls int
	Total time.Duration
}

func (n *NoSleep) Sleep(d time.Duration) {
	n.Calls++
	n.Total += d
}
