package tui

import "fmt"

// Screen is a named state of the task UI.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenView
	ScreenAdd
	ScreenDelete
	ScreenUpdate
	ScreenConfirmClear
)

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenView:
		return "view"
	case ScreenAdd:
		return "add"
	case ScreenDelete:
		return "delete"
	case ScreenUpdate:
		return "update"
	case ScreenConfirmClear:
		return "confirm-clear"
	default:
		return fmt.Sprintf("Screen(%d)", int(s))
	}
}

// action is a side effect run when a transition fires.
type action int

const (
	actionNone action = iota
	actionClear
)

type trigger struct {
	from Screen
	key  string
}

type edge struct {
	to     Screen
	action action
	// needsTasks blocks the edge while the list is empty.
	needsTasks bool
}

// transitions is the complete screen graph. Keys are tea.KeyMsg strings.
var transitions = map[trigger]edge{
	{ScreenWelcome, "1"}: {to: ScreenView},
	{ScreenWelcome, "v"}: {to: ScreenView},
	{ScreenWelcome, "2"}: {to: ScreenAdd},
	{ScreenWelcome, "a"}: {to: ScreenAdd},
	{ScreenWelcome, "3"}: {to: ScreenDelete},
	{ScreenWelcome, "d"}: {to: ScreenDelete},
	{ScreenWelcome, "4"}: {to: ScreenUpdate},
	{ScreenWelcome, "u"}: {to: ScreenUpdate},

	{ScreenView, "esc"}:   {to: ScreenWelcome},
	{ScreenAdd, "esc"}:    {to: ScreenWelcome},
	{ScreenDelete, "esc"}: {to: ScreenWelcome},
	{ScreenUpdate, "esc"}: {to: ScreenWelcome},

	{ScreenDelete, "c"}:         {to: ScreenConfirmClear, needsTasks: true},
	{ScreenConfirmClear, "y"}:   {to: ScreenDelete, action: actionClear},
	{ScreenConfirmClear, "n"}:   {to: ScreenDelete},
	{ScreenConfirmClear, "esc"}: {to: ScreenDelete},
}

// Transition returns the screen reached from `from` on key, if any.
func Transition(from Screen, key string) (Screen, bool) {
	e, ok := transitions[trigger{from, key}]
	return e.to, ok
}
