package widget

import "github.com/tinytelemetry/tradeadvance/internal/canvas"

// Sides holds the edge glyphs of a border. A zero rune leaves that edge
// out entirely.
type Sides struct {
	Left   rune
	Right  rune
	Top    rune
	Bottom rune
}

// Corners holds the corner glyphs of a border. A corner is only drawn when
// both adjacent sides are present; a zero rune leaves the cell blank.
type Corners struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

var (
	SidesBox  = Sides{Left: '|', Right: '|', Top: '-', Bottom: '-'}
	SidesNone = Sides{}

	CornersPlus  = Corners{TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+'}
	CornersRound = Corners{TopLeft: '.', TopRight: '.', BottomLeft: '`', BottomRight: '\''}
	CornersNone  = Corners{}
)

func (s Sides) insets() (left, right, top, bottom int) {
	return b2i(s.Left != 0), b2i(s.Right != 0), b2i(s.Top != 0), b2i(s.Bottom != 0)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Border frames its child.
type Border struct {
	child   Widget
	sides   Sides
	corners Corners
}

func NewBorder(child Widget) *Border {
	return &Border{child: child, sides: SidesBox, corners: CornersPlus}
}

func (b *Border) WithSides(s Sides) *Border {
	b.sides = s
	return b
}

func (b *Border) WithCorners(c Corners) *Border {
	b.corners = c
	return b
}

func (b *Border) MinSize() (int, int) {
	l, r, t, bt := b.sides.insets()
	cw, ch := b.child.MinSize()
	return cw + l + r, ch + t + bt
}

// Render lays the frame out at no less than MinSize and crops the result
// to the allocation.
func (b *Border) Render(w, h int) canvas.Canvas {
	mw, mh := b.MinSize()
	fw, fh := max(w, mw), max(h, mh)
	c := canvas.New(fw, fh)

	s := b.sides
	if s.Top != 0 {
		for x := range fw {
			c[0][x] = s.Top
		}
	}
	if s.Bottom != 0 {
		for x := range fw {
			c[fh-1][x] = s.Bottom
		}
	}
	if s.Left != 0 {
		for y := range fh {
			c[y][0] = s.Left
		}
	}
	if s.Right != 0 {
		for y := range fh {
			c[y][fw-1] = s.Right
		}
	}

	corner := func(x, y int, g rune, a, bb rune) {
		if a == 0 || bb == 0 {
			return
		}
		if g == 0 {
			g = ' '
		}
		c[y][x] = g
	}
	corner(0, 0, b.corners.TopLeft, s.Top, s.Left)
	corner(fw-1, 0, b.corners.TopRight, s.Top, s.Right)
	corner(0, fh-1, b.corners.BottomLeft, s.Bottom, s.Left)
	corner(fw-1, fh-1, b.corners.BottomRight, s.Bottom, s.Right)

	l, r, t, bt := s.insets()
	canvas.Overlay(c, b.child.Render(fw-l-r, fh-t-bt), l, t)

	if fw == w && fh == h {
		return c
	}
	return c.Clip(w, h)
}
