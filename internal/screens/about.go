package screens

import (
	"github.com/tinytelemetry/tradeadvance/internal/nav"
	"github.com/tinytelemetry/tradeadvance/internal/platform"
	"github.com/tinytelemetry/tradeadvance/internal/widget"
)

var thanks = []string{
	"- bubbletea, bubbles and lipgloss",
	"- viper, yaml.v3 and go-i18n",
	"- go-evdev for handheld input",
}

// About shows credits and the version.
type About struct {
	env *Env
}

func NewAbout(env *Env) *About {
	return &About{env: env}
}

func (a *About) Init() (nav.Action, error) { return nav.None(), nil }

func (a *About) Build() {
	t := a.env.Text

	credits := []widget.Widget{
		widget.NewAlign(widget.NewColumn(
			widget.NewText(t.T("about_thanks")),
			widget.NewDivider('-'),
		)).Horizontal(widget.Start),
	}
	for _, line := range thanks {
		credits = append(credits, widget.NewText(line))
	}

	backTab := widget.NewBorder(widget.NewText(" "+t.T("about_back")+" ")).
		WithSides(widget.Sides{Right: '\\', Top: '_'}).
		WithCorners(widget.CornersNone)
	versionTab := widget.NewBorder(widget.NewText(" "+t.T("about_version", map[string]any{"Version": a.env.Version})+" ")).
		WithSides(widget.Sides{Left: '/', Top: '_'}).
		WithCorners(widget.CornersNone)

	ui := widget.NewBorder(widget.NewColumn(
		widget.NewText(""),
		widget.NewAlign(widget.NewText(t.T("about_title"))),
		widget.NewAlign(widget.NewText(t.T("about_made_with"))),
		widget.NewText(""),
		widget.NewAlign(widget.NewText(t.T("about_body", map[string]any{"Dir": a.env.Store.Dir})).MaxWidth(44)),
		widget.NewText(""),
		widget.NewAlign(widget.NewBorder(
			widget.NewPadding(widget.NewSizedBox(
				widget.NewText(t.T("about_warranty")).MaxWidth(40),
			).Width(40)).Horizontal(1),
		).WithCorners(widget.CornersRound)),
		widget.NewText(""),
		widget.NewPadding(widget.NewColumn(credits...)).Left(3),
		widget.NewFlexible(1, widget.NewStack(
			widget.NewAlign(backTab).Horizontal(widget.Start).Vertical(widget.End),
			widget.NewAlign(versionTab).Horizontal(widget.End).Vertical(widget.End),
		)),
	))
	a.env.draw(ui)
}

func (a *About) HandleInput() (nav.Action, error) {
	key, err := a.env.Input.WaitInput()
	if err != nil {
		return nav.None(), err
	}
	switch key {
	case platform.KeyEscape, platform.KeyEnter:
		return nav.Pop(), nil
	}
	return nav.None(), nil
}
