// Package menu implements the numbered console menu over a task list.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/config"
	"todo/internal/output"
	"todo/internal/service"
)

// Console text.
const (
	menuTitle       = "To-Do List Menu:"
	promptNewTask   = "Enter a new task: "
	promptRemoveNum = "Enter task number to remove: "

	msgEmptyList    = "Your to-do list is empty!"
	msgTasksHeading = "Your tasks:"
	msgTaskAdded    = "Task added!"
	msgNothingToRm  = "No tasks to remove."
	msgRemoveHeader = "Tasks:"
	msgRemoved      = "Removed task: %s"
	msgBadNumber    = "Please enter a valid number."
	msgBadPosition  = "Invalid task number."
	msgGoodbye      = "Goodbye!"
)

// handler runs one dispatched choice and names the next state.
type handler func(ctx context.Context) (State, error)

// Session is one run of the menu loop. It owns no tasks itself; every
// mutation goes through the Service.
type Session struct {
	svc     service.Service
	in      *bufio.Reader
	out     io.Writer
	palette *output.Palette
	quiet   bool

	handlers map[Choice]handler
	state    State
	pending  string // raw input awaiting dispatch
}

// NewSession creates a session reading lines from in and writing to out.
func NewSession(svc service.Service, in io.Reader, out io.Writer, cfg *config.Config) *Session {
	s := &Session{
		svc:     svc,
		in:      bufio.NewReader(in),
		out:     out,
		palette: output.NewPalette(out, cfg.NoColor),
		quiet:   cfg.Quiet,
	}
	s.handlers = map[Choice]handler{
		ChoiceList:   s.list,
		ChoiceAdd:    s.add,
		ChoiceRemove: s.remove,
		ChoiceExit:   s.exit,
	}
	return s
}

// Run drives the loop until the exit choice or end of input.
// Only stream and service failures are returned; bad input is reported to
// the user and the menu is shown again.
func (s *Session) Run(ctx context.Context) error {
	logger := log.FromContext(ctx)

	s.state = StateShowMenu
	for s.state != StateExit {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := s.step(ctx)
		if err != nil {
			return err
		}
		logger.Debug("menu transition", "from", s.state, "to", next)
		s.state = next
	}
	return nil
}

// State returns the current loop state.
func (s *Session) State() State {
	return s.state
}

func (s *Session) step(ctx context.Context) (State, error) {
	switch s.state {
	case StateShowMenu:
		s.showMenu()
		return StateAwaitChoice, nil

	case StateAwaitChoice:
		line, err := s.readLine(s.choicePrompt())
		if err != nil {
			return s.endOfInput(err)
		}
		s.pending = line
		return StateDispatch, nil

	case StateDispatch:
		choice, err := ParseChoice(s.pending)
		if err != nil {
			log.FromContext(ctx).Debug("menu choice rejected", "input", s.pending)
			s.palette.Problem(s.out, fmt.Sprintf("Invalid choice! Please enter %s.", keyList()))
			return StateShowMenu, nil
		}
		log.FromContext(ctx).Debug("menu choice", "choice", choice)
		return s.handlers[choice](ctx)

	default:
		return StateExit, fmt.Errorf("menu: unexpected state %s", s.state)
	}
}

func (s *Session) showMenu() {
	fmt.Fprintln(s.out)
	s.palette.Heading(s.out, menuTitle)
	for _, e := range entries {
		fmt.Fprintf(s.out, "%s. %s\n", e.key, e.label)
	}
}

func (s *Session) choicePrompt() string {
	return fmt.Sprintf("Enter your choice (%s-%s): ", entries[0].key, entries[len(entries)-1].key)
}

func (s *Session) list(ctx context.Context) (State, error) {
	tasks, err := s.svc.Tasks(ctx)
	if errors.Is(err, service.ErrEmptyList) {
		fmt.Fprintln(s.out, msgEmptyList)
		return StateShowMenu, nil
	}
	if err != nil {
		return StateExit, fmt.Errorf("listing tasks: %w", err)
	}

	s.palette.Heading(s.out, msgTasksHeading)
	output.FormatTasks(s.out, tasks)
	return StateShowMenu, nil
}

func (s *Session) add(ctx context.Context) (State, error) {
	title, err := s.readLine(promptNewTask)
	if err != nil {
		return s.endOfInput(err)
	}

	if err := s.svc.AddTask(ctx, title); err != nil {
		return StateExit, fmt.Errorf("adding task: %w", err)
	}
	log.FromContext(ctx).Debug("task added", "position", s.svc.Len(ctx))

	if !s.quiet {
		s.palette.Success(s.out, msgTaskAdded)
	}
	return StateShowMenu, nil
}

func (s *Session) remove(ctx context.Context) (State, error) {
	tasks, err := s.svc.Tasks(ctx)
	if errors.Is(err, service.ErrEmptyList) {
		fmt.Fprintln(s.out, msgNothingToRm)
		return StateShowMenu, nil
	}
	if err != nil {
		return StateExit, fmt.Errorf("listing tasks: %w", err)
	}

	s.palette.Heading(s.out, msgRemoveHeader)
	output.FormatTasks(s.out, tasks)

	line, err := s.readLine(promptRemoveNum)
	if err != nil {
		return s.endOfInput(err)
	}

	pos, err := service.ParsePosition(line)
	if err == nil {
		var removed service.Task
		removed, err = s.svc.RemoveTask(ctx, pos)
		if err == nil {
			log.FromContext(ctx).Debug("task removed", "position", pos)
			s.palette.Success(s.out, fmt.Sprintf(msgRemoved, output.DisplayTitle(removed.Title)))
			return StateShowMenu, nil
		}
	}

	switch {
	case errors.Is(err, service.ErrInvalidNumber):
		s.palette.Problem(s.out, msgBadNumber)
	case errors.Is(err, service.ErrOutOfRange):
		s.palette.Problem(s.out, msgBadPosition)
	default:
		return StateExit, fmt.Errorf("removing task: %w", err)
	}
	log.FromContext(ctx).Debug("remove rejected", "input", line, "err", err)
	return StateShowMenu, nil
}

func (s *Session) exit(ctx context.Context) (State, error) {
	if !s.quiet {
		fmt.Fprintln(s.out, msgGoodbye)
	}
	return StateExit, nil
}

// readLine prompts and reads one line without its line ending.
// A final line without a newline is still returned.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)

	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// endOfInput ends the loop on EOF and fails on any other read error.
func (s *Session) endOfInput(err error) (State, error) {
	if errors.Is(err, io.EOF) {
		// Keep the shell prompt off the menu prompt line
		fmt.Fprintln(s.out)
		return StateExit, nil
	}
	return StateExit, fmt.Errorf("reading input: %w", err)
}
