// Package nav runs a stack of screens.
//
// The top screen draws a frame, waits for input and answers with an
// Action. Failures never escape: they are turned into an error screen
// pushed on top of whatever was showing.
package nav

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tinytelemetry/tradeadvance/internal/platform"
)

// Screen is one page of the UI.
type Screen interface {
	// Init runs once, before the screen is first drawn.
	Init() (Action, error)
	// Build draws the current frame to the console.
	Build()
	// HandleInput blocks for input and reports the resulting navigation.
	HandleInput() (Action, error)
}

// Options configures a Navigator.
type Options struct {
	Console platform.Console
	// Input is only read by the built-in error screen.
	Input platform.Input
	// ErrorScreen wraps a failure in a screen. It is pushed without Init.
	// When nil a plain text screen is used.
	ErrorScreen func(err error) Screen
	Logger      *slog.Logger
}

// Navigator owns the screen stack.
type Navigator struct {
	stack   []Screen
	console platform.Console
	onError func(error) Screen
	log     *slog.Logger
}

var errNilScreen = errors.New("nav: nil screen")

// New initialises root and makes it the bottom of the stack. If root fails
// to initialise, the stack holds only its error screen.
func New(root Screen, opts Options) *Navigator {
	n := &Navigator{
		console: opts.Console,
		onError: opts.ErrorScreen,
		log:     opts.Logger,
	}
	if n.log == nil {
		n.log = slog.New(slog.DiscardHandler)
	}
	if n.onError == nil {
		n.onError = func(err error) Screen {
			return &plainError{console: opts.Console, input: opts.Input, err: err}
		}
	}
	n.push(root)
	return n
}

// Len returns the stack depth.
func (n *Navigator) Len() int { return len(n.stack) }

// Top returns the active screen, or nil when the stack is empty.
func (n *Navigator) Top() Screen {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Run draws and dispatches input until the stack empties. It returns an
// error only when the console or the input driver goes away.
func (n *Navigator) Run() error {
	for len(n.stack) > 0 {
		top := n.Top()

		n.console.Clear()
		top.Build()
		if err := n.console.Flush(); err != nil {
			n.stack = nil
			return fmt.Errorf("nav: flush: %w", err)
		}

		action, err := top.HandleInput()
		if err != nil {
			if platform.IsShutdown(err) {
				n.log.Info("input closed, leaving", "depth", len(n.stack), "err", err)
				n.stack = nil
				return err
			}
			n.fail(err)
			continue
		}
		n.Apply(action)
	}
	return nil
}

// Apply performs a single action against the stack.
func (n *Navigator) Apply(a Action) {
	switch a.Kind {
	case ActionNone:
	case ActionPush:
		n.push(a.Screen)
	case ActionPop:
		n.pop()
	case ActionExit:
		n.log.Debug("exit", "depth", len(n.stack))
		clear(n.stack)
		n.stack = n.stack[:0]
	case ActionGo:
		n.replace(a.Screen)
	default:
		n.fail(fmt.Errorf("nav: unknown action %d", a.Kind))
	}
}

func (n *Navigator) push(s Screen) {
	if s == nil {
		n.fail(errNilScreen)
		return
	}
	next, err := s.Init()
	if err != nil {
		n.fail(err)
		return
	}
	n.stack = append(n.stack, s)
	n.log.Debug("push", "screen", fmt.Sprintf("%T", s), "depth", len(n.stack))
	n.Apply(next)
}

func (n *Navigator) pop() {
	if len(n.stack) == 0 {
		return
	}
	n.stack[len(n.stack)-1] = nil
	n.stack = n.stack[:len(n.stack)-1]
	n.log.Debug("pop", "depth", len(n.stack))
}

// replace swaps the top screen for s. If s fails to initialise the old top
// stays and the error screen goes above it.
func (n *Navigator) replace(s Screen) {
	if s == nil {
		n.fail(errNilScreen)
		return
	}
	next, err := s.Init()
	if err != nil {
		n.fail(err)
		return
	}
	if len(n.stack) == 0 {
		n.stack = append(n.stack, s)
	} else {
		n.stack[len(n.stack)-1] = s
	}
	n.log.Debug("go", "screen", fmt.Sprintf("%T", s), "depth", len(n.stack))
	n.Apply(next)
}

func (n *Navigator) fail(err error) {
	n.log.Error("screen failed", "err", err, "depth", len(n.stack))
	n.stack = append(n.stack, n.onError(err))
}

// plainError is shown when no error screen hook is configured. It prints
// the error and leaves on the next key. Without an input it stays for a
// single frame.
type plainError struct {
	console platform.Console
	input   platform.Input
	err     error
}

func (p *plainError) Init() (Action, error) { return None(), nil }

func (p *plainError) Build() {
	if p.console != nil {
		p.console.Print(fmt.Sprintf("error: %v\n\npress any key", p.err))
	}
}

func (p *plainError) HandleInput() (Action, error) {
	if p.input == nil {
		return Pop(), nil
	}
	if _, err := p.input.WaitInput(); err != nil {
		return None(), err
	}
	return Pop(), nil
}
