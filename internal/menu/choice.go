package menu

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedChoice is returned for input that names no menu entry.
var ErrUnrecognizedChoice = errors.New("unrecognized menu choice")

// Choice is a menu command.
type Choice int

const (
	ChoiceList Choice = iota + 1
	ChoiceAdd
	ChoiceRemove
	ChoiceExit
)

// String returns the command name used in logs.
func (c Choice) String() string {
	switch c {
	case ChoiceList:
		return "list"
	case ChoiceAdd:
		return "add"
	case ChoiceRemove:
		return "remove"
	case ChoiceExit:
		return "exit"
	default:
		return fmt.Sprintf("Choice(%d)", int(c))
	}
}

// entry is one line of the menu.
type entry struct {
	key    string
	choice Choice
	label  string
}

// entries is the menu in display order.
var entries = []entry{
	{key: "1", choice: ChoiceList, label: "View tasks"},
	{key: "2", choice: ChoiceAdd, label: "Add task"},
	{key: "3", choice: ChoiceRemove, label: "Remove task"},
	{key: "4", choice: ChoiceExit, label: "Quit"},
}

// ParseChoice maps typed input to a Choice. Surrounding whitespace is ignored.
func ParseChoice(input string) (Choice, error) {
	key := strings.TrimSpace(input)
	for _, e := range entries {
		if e.key == key {
			return e.choice, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedChoice, key)
}

// keyList renders the keys as "1, 2, 3 or 4".
func keyList() string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	if len(keys) == 1 {
		return keys[0]
	}
	return strings.Join(keys[:len(keys)-1], ", ") + " or " + keys[len(keys)-1]
}
