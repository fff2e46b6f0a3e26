package widget

import (
	"strings"
	"unicode/utf8"

	"github.com/tinytelemetry/tradeadvance/internal/canvas"
)

// Text is a block of text, optionally word-wrapped.
type Text struct {
	text     string
	maxWidth int
}

func NewText(s string) *Text {
	return &Text{text: s}
}

// MaxWidth enables greedy word wrapping at n columns. Words longer than n
// are kept whole and overflow.
func (t *Text) MaxWidth(n int) *Text {
	t.maxWidth = n
	return t
}

func (t *Text) MinSize() (int, int) {
	return blockSize(t.lines())
}

func (t *Text) Render(w, h int) canvas.Canvas {
	return drawLines(t.lines(), w, h)
}

func (t *Text) lines() []string {
	if t.maxWidth <= 0 {
		return strings.Split(t.text, "\n")
	}
	return wrap(t.text, t.maxWidth)
}

func wrap(s string, limit int) []string {
	var (
		lines   []string
		current strings.Builder
		n       int
	)
	for _, word := range strings.Fields(s) {
		wl := runeLen(word)
		switch {
		case n == 0:
			current.WriteString(word)
			n = wl
		case n+1+wl <= limit:
			current.WriteByte(' ')
			current.WriteString(word)
			n += 1 + wl
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			n = wl
		}
	}
	if n > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

// Image is a fixed block of ASCII art drawn verbatim.
type Image struct {
	lines []string
}

func NewImage(art string) *Image {
	art = strings.ReplaceAll(art, "\r", "")
	art = strings.TrimSuffix(art, "\n")
	return &Image{lines: strings.Split(art, "\n")}
}

func (i *Image) MinSize() (int, int) {
	return blockSize(i.lines)
}

func (i *Image) Render(w, h int) canvas.Canvas {
	return drawLines(i.lines, w, h)
}
