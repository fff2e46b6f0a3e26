package widget

import "github.com/tinytelemetry/tradeadvance/internal/canvas"

// Stack draws every child over the full allocation, later children on top.
type Stack struct {
	children []Widget
}

func NewStack(children ...Widget) *Stack {
	return &Stack{children: children}
}

func (s *Stack) MinSize() (int, int) {
	var w, h int
	for _, child := range s.children {
		cw, ch := child.MinSize()
		w = max(w, cw)
		h = max(h, ch)
	}
	return w, h
}

func (s *Stack) Render(w, h int) canvas.Canvas {
	c := canvas.New(w, h)
	for _, child := range s.children {
		canvas.Overlay(c, child.Render(w, h), 0, 0)
	}
	return c
}

// Builder calls build on every MinSize and Render, so the subtree always
// reflects current state.
type Builder struct {
	build func() Widget
}

func NewBuilder(build func() Widget) *Builder {
	return &Builder{build: build}
}

func (b *Builder) MinSize() (int, int) { return b.build().MinSize() }
func (b *Builder) Render(w, h int) canvas.Canvas { return b.build().Render(w, h) }
