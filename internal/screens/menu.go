package screens

import (
	"github.com/tinytelemetry/tradeadvance/internal/nav"
	"github.com/tinytelemetry/tradeadvance/internal/platform"
	"github.com/tinytelemetry/tradeadvance/internal/widget"
)

type menuItem int

const (
	menuTrade menuItem = iota
	menuAbout
	menuExit
	menuItems
)

var menuLabels = [menuItems]string{
	menuTrade: "menu_trade",
	menuAbout: "menu_about",
	menuExit:  "menu_exit",
}

// Menu is the main menu.
type Menu struct {
	env      *Env
	selected menuItem
}

func NewMenu(env *Env) *Menu {
	return &Menu{env: env}
}

func (m *Menu) Init() (nav.Action, error) {
	m.env.Console.SetColor(m.env.Theme.Menu)
	return nav.None(), nil
}

func (m *Menu) Build() {
	t := m.env.Text
	items := []widget.Widget{
		widget.NewText(t.T("menu_tagline")).MaxWidth(40),
		widget.NewText(""),
	}
	for i := range menuItems {
		if i > 0 {
			items = append(items, widget.NewText(" "))
		}
		btn := widget.NewButton(t.T(menuLabels[i])).Selected(m.selected == i)
		items = append(items, widget.NewAlign(widget.NewSizedBox(btn).Width(16)))
	}

	k := m.env.Keys
	ui := widget.NewBorder(widget.NewColumn(
		widget.NewAlign(picture(logoArt)),
		widget.NewAlign(widget.NewText("Advance")),
		widget.NewText(""),
		widget.NewText(""),
		widget.NewAlign(widget.NewPadding(widget.NewColumn(items...)).Left(1).Right(2)),
		widget.NewFlexible(1, widget.NewAlign(
			widget.NewText(platform.Hints(k.Up, k.Down, k.Enter)),
		).Vertical(widget.End)),
	))
	m.env.draw(ui)
}

func (m *Menu) HandleInput() (nav.Action, error) {
	key, err := m.env.Input.WaitInput()
	if err != nil {
		return nav.None(), err
	}
	switch key {
	case platform.KeyUp:
		if m.selected > 0 {
			m.selected--
		}
	case platform.KeyDown:
		if m.selected < menuItems-1 {
			m.selected++
		}
	case platform.KeyEnter:
		switch m.selected {
		case menuTrade:
			return nav.Push(NewTrade(m.env)), nil
		case menuAbout:
			return nav.Push(NewAbout(m.env)), nil
		default:
			return nav.Exit(), nil
		}
	case platform.KeyEscape:
		return nav.Pop(), nil
	}
	return nav.None(), nil
}
