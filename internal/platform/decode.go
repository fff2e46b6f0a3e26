package platform

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// decodeKeys turns raw terminal bytes into key messages. It understands
// control bytes, CSI and SS3 arrow sequences, alt+key and UTF-8 runes.
// Unknown escape sequences are skipped whole.
func decodeKeys(data []byte) []tea.KeyMsg {
	var out []tea.KeyMsg
	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b == 0x1b:
			msg, n := decodeEscape(data[i:])
			if n == 0 {
				n = 1
			}
			if msg != nil {
				out = append(out, *msg)
			}
			i += n
		case b == '\n':
			out = append(out, tea.KeyMsg{Type: tea.KeyEnter})
			i++
		case b == ' ':
			out = append(out, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			i++
		case b < 0x20 || b == 0x7f:
			out = append(out, tea.KeyMsg{Type: tea.KeyType(b)})
			i++
		default:
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
			}
			i += size
		}
	}
	return out
}

var arrowKeys = map[byte]tea.KeyType{
	'A': tea.KeyUp,
	'B': tea.KeyDown,
	'C': tea.KeyRight,
	'D': tea.KeyLeft,
}

func decodeEscape(data []byte) (*tea.KeyMsg, int) {
	if len(data) == 1 {
		return &tea.KeyMsg{Type: tea.KeyEscape}, 1
	}
	switch next := data[1]; next {
	case '[':
		// CSI: parameter bytes 0x30-0x3F, intermediates 0x20-0x2F, final 0x40-0x7E.
		j := 2
		for j < len(data) && data[j] >= 0x20 && data[j] <= 0x3f {
			j++
		}
		if j >= len(data) {
			return &tea.KeyMsg{Type: tea.KeyEscape}, 1
		}
		if t, ok := arrowKeys[data[j]]; ok {
			return &tea.KeyMsg{Type: t}, j + 1
		}
		return nil, j + 1
	case 'O':
		if len(data) < 3 {
			return &tea.KeyMsg{Type: tea.KeyEscape}, 1
		}
		if t, ok := arrowKeys[data[2]]; ok {
			return &tea.KeyMsg{Type: t}, 3
		}
		return nil, 3
	case 0x1b:
		return &tea.KeyMsg{Type: tea.KeyEscape}, 1
	default:
		r, size := utf8.DecodeRune(data[1:])
		if r == utf8.RuneError || r < 0x20 {
			return &tea.KeyMsg{Type: tea.KeyEscape}, 1
		}
		return &tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}, 1 + size
	}
}
