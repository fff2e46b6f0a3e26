package widget

import "github.com/tinytelemetry/tradeadvance/internal/canvas"

// Padding insets its child.
type Padding struct {
	child                    Widget
	top, right, bottom, left int
}

func NewPadding(child Widget) *Padding {
	return &Padding{child: child}
}

func (p *Padding) All(n int) *Padding {
	p.top, p.right, p.bottom, p.left = n, n, n, n
	return p
}

func (p *Padding) Horizontal(n int) *Padding {
	p.left, p.right = n, n
	return p
}

func (p *Padding) Vertical(n int) *Padding {
	p.top, p.bottom = n, n
	return p
}

func (p *Padding) Top(n int) *Padding {
	p.top = n
	return p
}

func (p *Padding) Right(n int) *Padding {
	p.right = n
	return p
}

func (p *Padding) Bottom(n int) *Padding {
	p.bottom = n
	return p
}

func (p *Padding) Left(n int) *Padding {
	p.left = n
	return p
}

func (p *Padding) MinSize() (int, int) {
	cw, ch := p.child.MinSize()
	return cw + p.left + p.right, ch + p.top + p.bottom
}

func (p *Padding) Render(w, h int) canvas.Canvas {
	c := canvas.New(w, h)
	iw := max(w-p.left-p.right, 0)
	ih := max(h-p.top-p.bottom, 0)
	canvas.Overlay(c, p.child.Render(iw, ih), p.left, p.top)
	return c
}

// SizedBox pins one or both axes to a fixed size. A nil child makes an
// empty spacer.
type SizedBox struct {
	child         Widget
	width, height int
	hasW, hasH    bool
}

func NewSizedBox(child Widget) *SizedBox {
	return &SizedBox{child: child}
}

// Spacer is an empty box of the given size.
func Spacer(w, h int) *SizedBox {
	return NewSizedBox(nil).Width(w).Height(h)
}

func (s *SizedBox) Width(n int) *SizedBox {
	s.width, s.hasW = n, true
	return s
}

func (s *SizedBox) Height(n int) *SizedBox {
	s.height, s.hasH = n, true
	return s
}

func (s *SizedBox) MinSize() (int, int) {
	var cw, ch int
	if s.child != nil {
		cw, ch = s.child.MinSize()
	}
	if s.hasW {
		cw = s.width
	}
	if s.hasH {
		ch = s.height
	}
	return cw, ch
}

func (s *SizedBox) Render(w, h int) canvas.Canvas {
	c := canvas.New(w, h)
	if s.child == nil {
		return c
	}
	rw, rh := w, h
	if s.hasW {
		rw = s.width
	}
	if s.hasH {
		rh = s.height
	}
	canvas.Overlay(c, s.child.Render(rw, rh), 0, 0)
	return c
}
