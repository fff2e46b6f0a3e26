// Package canvas holds the character grid every widget renders into.
package canvas

import "strings"

// Wipe marks a cell that forces the underlying cell blank when composited.
// It never reaches the output: String maps it to a space.
const Wipe = '\uE000'

// Canvas is a grid of runes addressed as c[row][col]. All rows have the
// same length.
type Canvas [][]rune

// New returns a canvas of h rows by w columns filled with spaces.
// Negative sizes are treated as zero.
func New(w, h int) Canvas {
	w = max(w, 0)
	h = max(h, 0)
	c := make(Canvas, h)
	for y := range c {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		c[y] = row
	}
	return c
}

// Width returns the number of columns.
func (c Canvas) Width() int {
	if len(c) == 0 {
		return 0
	}
	return len(c[0])
}

// Height returns the number of rows.
func (c Canvas) Height() int { return len(c) }

// Overlay composites child onto parent with its top-left corner at (x, y).
// Spaces in child are transparent, Wipe cells blank the parent, and cells
// falling outside parent are dropped.
func Overlay(parent, child Canvas, x, y int) {
	for j, row := range child {
		py := y + j
		if py < 0 || py >= len(parent) {
			continue
		}
		dst := parent[py]
		for i, r := range row {
			px := x + i
			if px < 0 || px >= len(dst) {
				continue
			}
			switch r {
			case ' ':
			case Wipe:
				dst[px] = ' '
			default:
				dst[px] = r
			}
		}
	}
}

// String joins the rows with newlines.
func (c Canvas) String() string {
	var b strings.Builder
	for y, row := range c {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, r := range row {
			if r == Wipe {
				r = ' '
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Lines returns the rows as strings, with Wipe mapped to space.
func (c Canvas) Lines() []string {
	out := make([]string, len(c))
	for y, row := range c {
		out[y] = strings.Map(func(r rune) rune {
			if r == Wipe {
				return ' '
			}
			return r
		}, string(row))
	}
	return out
}

// Clip returns a w by h canvas holding the top-left region of c. Cells
// beyond c are spaces.
func (c Canvas) Clip(w, h int) Canvas {
	out := New(w, h)
	for y := 0; y < len(out) && y < len(c); y++ {
		copy(out[y], c[y])
	}
	return out
}
