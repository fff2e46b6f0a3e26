package screens

import (
	"github.com/tinytelemetry/tradeadvance/internal/nav"
	"github.com/tinytelemetry/tradeadvance/internal/widget"
)

// Exit plays the farewell animation and pops itself.
type Exit struct {
	env *Env
}

func NewExit(env *Env) *Exit {
	return &Exit{env: env}
}

func (e *Exit) Init() (nav.Action, error) {
	e.env.Console.SetColor(e.env.Theme.Exit)
	return nav.None(), nil
}

func (e *Exit) still() widget.Widget {
	return widget.NewAlign(widget.NewColumn(
		widget.NewAlign(picture(mouseArt)),
		widget.NewText(""),
		widget.NewAlign(widget.NewText(e.env.Text.T("exit_goodbye"))),
	))
}

func (e *Exit) Build() { e.env.draw(e.still()) }

func (e *Exit) HandleInput() (nav.Action, error) {
	if e.env.SkipAnimations {
		return nav.Pop(), nil
	}

	still := e.still()
	spark := widget.NewStack(still, widget.NewAlign(picture(mouseSparks)))

	e.env.Sleep.Sleep(ms(650))
	play(e.env, e.env.Theme.Exit, e.env.Theme.ExitFlash, []frame{
		{hold: ms(50), art: spark, flash: true},
		{hold: ms(300), art: still},
		{hold: ms(50), art: spark, flash: true},
		{hold: ms(100), art: still},
		{hold: ms(50), art: spark, flash: true},
		{hold: ms(400), art: still},
		{hold: ms(100), art: spark, flash: true},
		{hold: ms(500), art: still},
		{hold: ms(50), art: spark, flash: true},
		{hold: ms(50), art: still},
		{hold: ms(300), art: spark, flash: true},
		{hold: ms(50), art: still},
	})
	return nav.Pop(), nil
}
