// Package screens implements the pages of the trading tool.
package screens

import (
	"log/slog"

	"github.com/tinytelemetry/tradeadvance/internal/journal"
	"github.com/tinytelemetry/tradeadvance/internal/locale"
	"github.com/tinytelemetry/tradeadvance/internal/nav"
	"github.com/tinytelemetry/tradeadvance/internal/platform"
	"github.com/tinytelemetry/tradeadvance/internal/savedata"
	"github.com/tinytelemetry/tradeadvance/internal/widget"
)

// Snapshotter copies a save aside before it is overwritten.
type Snapshotter interface {
	Snapshot(path string) (string, error)
}

// TradeLog records completed trades.
type TradeLog interface {
	Append(t journal.Trade) (uint64, error)
}

// Env is the set of drivers and settings every screen shares.
type Env struct {
	Console platform.Console
	Input   platform.Input
	Sleep   platform.Sleeper
	Keys    platform.KeyMap
	Store   *savedata.Store
	Backup  Snapshotter // nil skips backups
	History TradeLog    // nil skips the trade history
	Text    *locale.Localizer
	Theme   Theme
	Log     *slog.Logger

	Version        string
	FPS            int
	SkipAnimations bool
}

// ErrorScreen wraps err in an error screen. It matches the shape the
// navigator expects for its error hook.
func (e *Env) ErrorScreen(err error) nav.Screen {
	return NewError(e, err)
}

// NavOptions returns navigator options wired to this environment.
func (e *Env) NavOptions() nav.Options {
	return nav.Options{Console: e.Console, Input: e.Input, ErrorScreen: e.ErrorScreen, Logger: e.log()}
}

func (e *Env) draw(w widget.Widget) {
	e.Console.Print(widget.RenderUI(w))
}

// redraw pushes a complete frame outside the navigator loop, for
// animations.
func (e *Env) redraw(build func()) {
	e.Console.Clear()
	build()
	if err := e.Console.Flush(); err != nil {
		e.log().Warn("flush failed", "err", err)
	}
}

func (e *Env) fps() int {
	if e.FPS <= 0 {
		return 60
	}
	return e.FPS
}

func (e *Env) log() *slog.Logger {
	if e.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Log
}
