package widget

import "github.com/tinytelemetry/tradeadvance/internal/canvas"

// ButtonStyle is the frame of a button in one state.
type ButtonStyle struct {
	Sides   Sides
	Corners Corners
}

var (
	ButtonNormal   = ButtonStyle{Sides: SidesBox, Corners: CornersRound}
	ButtonSelected = ButtonStyle{Sides: Sides{Left: '|', Right: '|', Top: '=', Bottom: '='}, Corners: CornersRound}
)

// Button is a framed, centered label.
type Button struct {
	label    string
	selected bool
	normal   ButtonStyle
	active   ButtonStyle
}

func NewButton(label string) *Button {
	return &Button{label: label, normal: ButtonNormal, active: ButtonSelected}
}

func (b *Button) Selected(v bool) *Button {
	b.selected = v
	return b
}

// Styles overrides the frames used for the normal and selected states.
func (b *Button) Styles(normal, selected ButtonStyle) *Button {
	b.normal, b.active = normal, selected
	return b
}

func (b *Button) tree() Widget {
	st := b.normal
	if b.selected {
		st = b.active
	}
	return NewBorder(NewAlign(NewText(b.label))).
		WithSides(st.Sides).
		WithCorners(st.Corners)
}

func (b *Button) MinSize() (int, int) { return b.tree().MinSize() }
func (b *Button) Render(w, h int) canvas.Canvas { return b.tree().Render(w, h) }
