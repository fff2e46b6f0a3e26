package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
)

// Terminal drives a text terminal: frames go to out, keys come from in.
// When in is a TTY it is switched to raw mode for the lifetime of the
// console.
type Terminal struct {
	in   *os.File
	out  io.Writer
	keys KeyMap

	renderer *lipgloss.Renderer
	frame    strings.Builder
	color    uint8
	hasColor bool

	raw     *term.State
	pending []Key
	readBuf []byte
}

// NewTerminal returns a terminal console and input over in and out.
func NewTerminal(in *os.File, out io.Writer, keys KeyMap) *Terminal {
	return &Terminal{
		in:       in,
		out:      out,
		keys:     keys,
		renderer: lipgloss.NewRenderer(out),
		readBuf:  make([]byte, 64),
	}
}

func (t *Terminal) Init() error {
	if term.IsTerminal(t.in.Fd()) {
		state, err := term.MakeRaw(t.in.Fd())
		if err != nil {
			return fmt.Errorf("terminal: raw mode: %w", err)
		}
		t.raw = state
	}
	_, err := io.WriteString(t.out, ansi.SetAltScreenSaveCursorMode+ansi.HideCursor)
	return err
}

func (t *Terminal) Print(s string) { t.frame.WriteString(s) }

func (t *Terminal) Clear() { t.frame.Reset() }

func (t *Terminal) SetColor(code uint8) {
	t.color = code
	t.hasColor = true
}

func (t *Terminal) Flush() error {
	body := t.frame.String()
	if t.hasColor {
		body = t.renderer.NewStyle().Foreground(lipgloss.ANSIColor(t.color)).Render(body)
	}
	// Raw mode disables output post-processing, so line feeds need an
	// explicit carriage return.
	body = strings.ReplaceAll(body, "\n", "\r\n")
	_, err := io.WriteString(t.out, ansi.CursorHomePosition+ansi.EraseEntireScreen+body)
	if err != nil {
		return fmt.Errorf("terminal: flush: %w", err)
	}
	return nil
}

func (t *Terminal) Dispose() error {
	_, werr := io.WriteString(t.out, ansi.ResetStyle+ansi.ShowCursor+ansi.ResetAltScreenSaveCursorMode)
	if t.raw == nil {
		return werr
	}
	rerr := term.Restore(t.in.Fd(), t.raw)
	t.raw = nil
	return errors.Join(werr, rerr)
}

// WaitInput reads until a bound key arrives. Unbound keys are ignored.
func (t *Terminal) WaitInput() (Key, error) {
	for len(t.pending) == 0 {
		n, err := t.in.Read(t.readBuf)
		if n > 0 {
			for _, msg := range decodeKeys(t.readBuf[:n]) {
				k, ok, rerr := t.keys.Resolve(msg)
				if rerr != nil {
					return 0, rerr
				}
				if ok {
					t.pending = append(t.pending, k)
				}
			}
		}
		if err != nil {
			if len(t.pending) > 0 {
				break
			}
			if errors.Is(err, io.EOF) {
				return 0, ErrInputClosed
			}
			return 0, fmt.Errorf("terminal: read: %w", err)
		}
	}
	k := t.pending[0]
	t.pending = t.pending[1:]
	return k, nil
}
