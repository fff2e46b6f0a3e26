package screens

import (
	"strings"
	"time"

	"github.com/tinytelemetry/tradeadvance/internal/widget"
)

func picture(art string) *widget.Image {
	return widget.NewImage(strings.TrimPrefix(art, "\n"))
}

// frame is one still of a timed animation.
type frame struct {
	hold  time.Duration
	art   widget.Widget
	flash bool
}

// play shows frames in order. Flash frames use hi and switch back to base
// afterwards.
func play(env *Env, base, hi uint8, frames []frame) {
	for _, f := range frames {
		if f.flash {
			env.Console.SetColor(hi)
		}
		env.redraw(func() { env.draw(f.art) })
		env.Sleep.Sleep(f.hold)
		if f.flash {
			env.Console.SetColor(base)
		}
	}
}

// ms is shorthand for frame timings.
func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
