package screens

import (
	"github.com/tinytelemetry/tradeadvance/internal/nav"
	"github.com/tinytelemetry/tradeadvance/internal/widget"
)

// Splash plays the intro animation and moves on to the menu.
type Splash struct {
	env *Env
}

func NewSplash(env *Env) *Splash {
	return &Splash{env: env}
}

func (s *Splash) Init() (nav.Action, error) {
	s.env.Console.SetColor(s.env.Theme.Splash)
	return nav.None(), nil
}

func (s *Splash) layout(art string) widget.Widget {
	return widget.NewColumn(
		widget.NewFlexible(1, widget.NewAlign(picture(art)).Vertical(widget.End)),
		widget.NewText(""),
		widget.NewFlexible(1, widget.NewAlign(widget.NewText(s.env.Text.T("splash_tagline"))).Vertical(widget.Start)),
	)
}

func (s *Splash) Build() { s.env.draw(s.layout(psychicArt)) }

// HandleInput does not read input: the splash runs to completion.
func (s *Splash) HandleInput() (nav.Action, error) {
	if s.env.SkipAnimations {
		return nav.Go(NewMenu(s.env)), nil
	}

	still := s.layout(psychicArt)
	glow := s.layout(flash(psychicArt, '#'))
	sparkle := widget.NewStack(still, widget.NewAlign(picture(psychicSparkles)))
	full := widget.NewStack(s.layout(flash(psychicArt, '@')), widget.NewAlign(picture(psychicSparkles)))

	s.env.Sleep.Sleep(ms(650))
	play(s.env, s.env.Theme.Splash, s.env.Theme.SplashFlash, []frame{
		{hold: ms(50), art: glow},
		{hold: ms(300), art: still},
		{hold: ms(50), art: glow},
		{hold: ms(100), art: still},
		{hold: ms(50), art: glow},
		{hold: ms(400), art: still},
		{hold: ms(100), art: sparkle, flash: true},
		{hold: ms(500), art: still},
		{hold: ms(50), art: still},
		{hold: ms(50), art: sparkle, flash: true},
		{hold: ms(300), art: full, flash: true},
		{hold: ms(50), art: still},
	})
	return nav.Go(NewMenu(s.env)), nil
}
