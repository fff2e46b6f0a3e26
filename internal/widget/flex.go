package widget

import "github.com/tinytelemetry/tradeadvance/internal/canvas"

// Flexible passes through to its child and gives it a flex weight in the
// enclosing Column or Row.
type Flexible struct {
	child  Widget
	weight int
}

func NewFlexible(weight int, child Widget) *Flexible {
	return &Flexible{child: child, weight: weight}
}

func (f *Flexible) FlexFactor() int { return f.weight }
func (f *Flexible) MinSize() (int, int) { return f.child.MinSize() }
func (f *Flexible) Render(w, h int) canvas.Canvas { return f.child.Render(w, h) }

// Column stacks its children top to bottom.
type Column struct {
	children []Widget
}

func NewColumn(children ...Widget) *Column {
	return &Column{children: children}
}

func (c *Column) MinSize() (int, int) {
	var w, h int
	for _, child := range c.children {
		cw, ch := child.MinSize()
		w = max(w, cw)
		h += ch
	}
	return w, h
}

// Render does not hand out the columns lost to integer division.
func (c *Column) Render(w, h int) canvas.Canvas {
	mins := make([]int, len(c.children))
	for i, child := range c.children {
		_, mins[i] = child.MinSize()
	}
	sizes := distribute(mins, weights(c.children), h, false)

	out := canvas.New(w, h)
	y := 0
	for i, child := range c.children {
		if y >= h {
			break
		}
		canvas.Overlay(out, child.Render(w, sizes[i]), 0, y)
		y += sizes[i]
	}
	return out
}

// Row places its children left to right.
type Row struct {
	children []Widget
}

func NewRow(children ...Widget) *Row {
	return &Row{children: children}
}

func (r *Row) MinSize() (int, int) {
	var w, h int
	for _, child := range r.children {
		cw, ch := child.MinSize()
		w += cw
		h = max(h, ch)
	}
	return w, h
}

func (r *Row) Render(w, h int) canvas.Canvas {
	mins := make([]int, len(r.children))
	for i, child := range r.children {
		mins[i], _ = child.MinSize()
	}
	sizes := distribute(mins, weights(r.children), w, true)

	out := canvas.New(w, h)
	x := 0
	for i, child := range r.children {
		if x >= w {
			break
		}
		canvas.Overlay(out, child.Render(sizes[i], h), x, 0)
		x += sizes[i]
	}
	return out
}

func weights(children []Widget) []int {
	ws := make([]int, len(children))
	for i, child := range children {
		ws[i] = FlexOf(child)
	}
	return ws
}

// distribute grows mins along the main axis. Surplus space goes to weighted
// entries in proportion to their weight, truncated. With repair set, what
// truncation leaves over is handed out one cell per entry, in order, in a
// single pass.
func distribute(mins, weights []int, alloc int, repair bool) []int {
	sizes := make([]int, len(mins))
	used := 0
	for i, m := range mins {
		sizes[i] = m
		used += m
	}
	surplus := alloc - used
	if surplus <= 0 {
		return sizes
	}

	total := 0
	for _, wt := range weights {
		total += wt
	}
	given := 0
	if total > 0 {
		for i, wt := range weights {
			if wt == 0 {
				continue
			}
			extra := surplus * wt / total
			sizes[i] += extra
			given += extra
		}
	}

	if repair {
		rem := surplus - given
		for i := range sizes {
			if rem == 0 {
				break
			}
			sizes[i]++
			rem--
		}
	}
	return sizes
}
