package menu

import "fmt"

// State is a step of the interaction loop.
//
//	ShowMenu -> AwaitChoice -> Dispatch -> ShowMenu
//	                                    -> Exit (choice 4 or end of input)
type State int

const (
	StateShowMenu State = iota
	StateAwaitChoice
	StateDispatch
	StateExit
)

func (s State) String() string {
	switch s {
	case StateShowMenu:
		return "show-menu"
	case StateAwaitChoice:
		return "await-choice"
	case StateDispatch:
		return "dispatch"
	case StateExit:
		return "exit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
