package screens

import (
	"github.com/tinytelemetry/tradeadvance/internal/nav"
	"github.com/tinytelemetry/tradeadvance/internal/platform"
	"github.com/tinytelemetry/tradeadvance/internal/widget"
)

// Error shows a failure until the user confirms it.
type Error struct {
	env *Env
	err error
}

func NewError(env *Env, err error) *Error {
	return &Error{env: env, err: err}
}

// Err returns the error being shown.
func (e *Error) Err() error { return e.err }

func (e *Error) Init() (nav.Action, error) { return nav.None(), nil }

func (e *Error) Build() {
	t := e.env.Text
	ui := widget.NewBorder(widget.NewColumn(
		widget.NewAlign(widget.NewPadding(widget.NewText(t.T("error_title"))).Vertical(1)),
		widget.NewDivider('-'),
		widget.NewText(""),
		widget.NewFlexible(1, widget.NewAlign(
			widget.NewBorder(widget.NewPadding(
				widget.NewText(t.Describe(e.err)).MaxWidth(40),
			)).WithCorners(widget.CornersRound),
		)),
		widget.NewAlign(widget.NewSizedBox(
			widget.NewButton(t.T("error_ok")).Selected(true),
		).Width(8).Height(3)),
		widget.NewText(""),
		widget.NewText(""),
	))
	e.env.draw(ui)
}

func (e *Error) HandleInput() (nav.Action, error) {
	key, err := e.env.Input.WaitInput()
	if err != nil {
		return nav.None(), err
	}
	if key == platform.KeyEnter {
		return nav.Pop(), nil
	}
	return nav.None(), nil
}
