package widget

import "github.com/tinytelemetry/tradeadvance/internal/canvas"

// Alignment positions a child along one axis of its allocation.
type Alignment int

const (
	Center Alignment = iota
	Start
	End
	Stretch
)

func (a Alignment) String() string {
	switch a {
	case Start:
		return "start"
	case End:
		return "end"
	case Stretch:
		return "stretch"
	default:
		return "center"
	}
}

// place returns the rendered length and offset of a child with minimum
// length size inside alloc.
func (a Alignment) place(size, alloc int) (length, offset int) {
	if a == Stretch {
		return alloc, 0
	}
	length = min(size, alloc)
	switch a {
	case Start:
		return length, 0
	case End:
		return length, alloc - length
	default:
		return length, (alloc - length) / 2
	}
}

// Align renders its child at its minimum size and positions it inside the
// allocation. Both axes default to Center.
type Align struct {
	child      Widget
	horizontal Alignment
	vertical   Alignment
}

func NewAlign(child Widget) *Align {
	return &Align{child: child}
}

func (a *Align) Horizontal(al Alignment) *Align {
	a.horizontal = al
	return a
}

func (a *Align) Vertical(al Alignment) *Align {
	a.vertical = al
	return a
}

func (a *Align) MinSize() (int, int) { return a.child.MinSize() }

func (a *Align) Render(w, h int) canvas.Canvas {
	cw, ch := a.child.MinSize()
	rw, x := a.horizontal.place(cw, w)
	rh, y := a.vertical.place(ch, h)

	c := canvas.New(w, h)
	canvas.Overlay(c, a.child.Render(rw, rh), x, y)
	return c
}
