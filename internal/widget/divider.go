package widget

import (
	"math"

	"github.com/tinytelemetry/tradeadvance/internal/canvas"
)

// Divider is a one cell thick line. Horizontal dividers fill the first row,
// vertical ones the middle column.
type Divider struct {
	glyph    rune
	vertical bool
}

func NewDivider(glyph rune) *Divider {
	return &Divider{glyph: glyph}
}

func (d *Divider) Vertical() *Divider {
	d.vertical = true
	return d
}

func (d *Divider) MinSize() (int, int) { return 1, 1 }

func (d *Divider) Render(w, h int) canvas.Canvas {
	c := canvas.New(w, h)
	if w == 0 || h == 0 {
		return c
	}
	if !d.vertical {
		for x := range c[0] {
			c[0][x] = d.glyph
		}
		return c
	}
	col := 0
	if w > 1 {
		col = w / 2
	}
	for y := range c {
		c[y][col] = d.glyph
	}
	return c
}

// ProgressBar fills a fraction of its width with fg and marks the leading
// edge with tip while the bar is incomplete.
type ProgressBar struct {
	fraction    float64
	fg, tip, bg rune
}

func NewProgressBar(fraction float64, fg, tip, bg rune) *ProgressBar {
	return &ProgressBar{fraction: fraction, fg: fg, tip: tip, bg: bg}
}

func (p *ProgressBar) MinSize() (int, int) { return 5, 1 }

func (p *ProgressBar) Render(w, h int) canvas.Canvas {
	f := p.fraction
	if math.IsNaN(f) || f < 0 {
		f = 0
	}
	f = min(f, 1)
	active := int(math.Floor(float64(w) * f))

	c := canvas.New(w, h)
	for _, row := range c {
		for x := range row {
			if x < active {
				row[x] = p.fg
			} else {
				row[x] = p.bg
			}
		}
		if f < 1 && active > 0 {
			row[active-1] = p.tip
		}
	}
	return c
}
