// Package widget implements the layout tree rendered into a canvas.
//
// Every node reports a minimum size and renders into exactly the size it is
// given. Containers negotiate space for their children and overlay the
// results. Trees are cheap values rebuilt on every frame.
package widget

import "github.com/tinytelemetry/tradeadvance/internal/canvas"

// Fixed output resolution.
const (
	Cols = 53
	Rows = 30
)

// Widget is a layout node.
type Widget interface {
	MinSize() (w, h int)
	Render(w, h int) canvas.Canvas
}

// Flexer is implemented by widgets that claim a share of surplus space in
// a Column or Row.
type Flexer interface {
	FlexFactor() int
}

// FlexOf returns the flex weight of w, or 0 when w has none.
func FlexOf(w Widget) int {
	f, ok := w.(Flexer)
	if !ok {
		return 0
	}
	return max(f.FlexFactor(), 0)
}

// RenderUI renders w at the fixed resolution and flattens it to a string.
func RenderUI(w Widget) string {
	return w.Render(Cols, Rows).String()
}

// drawLines copies lines into a w by h canvas starting at the top-left
// corner, clipping anything that does not fit.
func drawLines(lines []string, w, h int) canvas.Canvas {
	c := canvas.New(w, h)
	for y, line := range lines {
		if y >= h {
			break
		}
		x := 0
		for _, r := range line {
			if x >= w {
				break
			}
			c[y][x] = r
			x++
		}
	}
	return c
}

func blockSize(lines []string) (w, h int) {
	for _, line := range lines {
		w = max(w, runeLen(line))
	}
	return w, len(lines)
}
