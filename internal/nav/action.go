package nav

// ActionKind is what a screen asks the navigator to do next.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPush
	ActionPop
	ActionExit
	ActionGo
)

func (k ActionKind) String() string {
	switch k {
	case ActionPush:
		return "push"
	case ActionPop:
		return "pop"
	case ActionExit:
		return "exit"
	case ActionGo:
		return "go"
	default:
		return "none"
	}
}

// Action is a navigation request. Screen is set for Push and Go only. The
// zero value does nothing.
type Action struct {
	Kind   ActionKind
	Screen Screen
}

func None() Action { return Action{} }
func Pop() Action { return Action{Kind: ActionPop} }
func Exit() Action { return Action{Kind: ActionExit} }
func Push(s Screen) Action { return Action{Kind: ActionPush, Screen: s} }
func Go(s Screen) Action { return Action{Kind: ActionGo, Screen: s} }
