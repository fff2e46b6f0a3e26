package platform

import "strings"

// Recorder is an in-memory console. Every flushed frame is kept.
type Recorder struct {
	Frames      []string
	Colors      []uint8
	Initialized bool
	Disposed    bool

	pending strings.Builder
	color   uint8
}

var _ Console = (*Recorder)(nil)

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Init() error {
	r.Initialized = true
	return nil
}

func (r *Recorder) Print(s string) { r.pending.WriteString(s) }
func (r *Recorder) Clear() { r.pending.Reset() }
func (r *Recorder) SetColor(code uint8) { r.color = code }

func (r *Recorder) Flush() error {
	r.Frames = append(r.Frames, r.pending.String())
	r.Colors = append(r.Colors, r.color)
	return nil
}

func (r *Recorder) Dispose() error {
	r.Disposed = true
	return nil
}

// Last returns the most recent frame, or "" when nothing was flushed.
func (r *Recorder) Last() string {
	if len(r.Frames) == 0 {
		return ""
	}
	return r.Frames[len(r.Frames)-1]
}

// ScriptInput replays a fixed key sequence and then reports
// ErrInputClosed.
type ScriptInput struct {
	keys []Key
	pos  int
}

var _ Input = (*ScriptInput)(nil)

func NewScriptInput(keys ...Key) *ScriptInput {
	return &ScriptInput{keys: keys}
}

// ParseScript reads a comma or whitespace separated key list such as
// "down, down, enter".
func ParseScript(s string) (*ScriptInput, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	keys := make([]Key, 0, len(fields))
	for _, f := range fields {
		k, err := ParseKey(f)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return NewScriptInput(keys...), nil
}

func (s *ScriptInput) WaitInput() (Key, error) {
	if s.pos >= len(s.keys) {
		return 0, ErrInputClosed
	}
	k := s.keys[s.pos]
	s.pos++
	return k, nil
}

// Remaining returns how many keys have not been consumed.
func (s *ScriptInput) Remaining() int { return len(s.keys) - s.pos }
