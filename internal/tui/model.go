// Package tui provides the full-screen task interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"todo/internal/output"
	"todo/internal/service"
)

// Notices shown after an action.
const (
	noticeBlankAdd    = "Please enter a task before adding."
	noticeNoRemoval   = "Please select a task to remove."
	noticeNoClear     = "No tasks to remove."
	noticeNoUpdate    = "Please select a task to update."
	noticeBlankUpdate = "Please enter new text for the task."
	noticeAdded       = "Task added."
	noticeUpdated     = "Task updated."
	addPlaceholder    = "Describe your task..."
	updatePlaceholder = "New text"
)

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, svc service.Service, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(New(ctx, svc), opts...)
	_, err := program.Run()
	if ctx.Err() != nil {
		// Run has restored the terminal by the time it returns
		return ctx.Err()
	}
	return err
}

// Model is the bubbletea model. All task access goes through the Service.
type Model struct {
	ctx    context.Context
	svc    service.Service
	logger *log.Logger

	screen   Screen
	tasks    []service.Task
	cursor   int          // 0-based row in tasks
	marked   map[int]bool // delete screen selection, 0-based
	selected int          // update screen selection, 1-based, 0 = none
	input    textinput.Model
	notice   string
	err      error
}

// New creates a model on the welcome screen.
func New(ctx context.Context, svc service.Service) *Model {
	input := textinput.New()
	input.Prompt = "> "
	m := &Model{
		ctx:    ctx,
		svc:    svc,
		logger: log.FromContext(ctx),
		input:  input,
	}
	m.enter(ScreenWelcome)
	return m
}

// Screen returns the current screen.
func (m *Model) Screen() Screen { return m.screen }

// Notice returns the last message shown to the user.
func (m *Model) Notice() string { return m.notice }

// Err returns the last unexpected service error.
func (m *Model) Err() error { return m.err }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.input.Focused() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	key := keyMsg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.input.Focused() {
		return m.updateEditor(keyMsg)
	}
	if key == "q" {
		return m, tea.Quit
	}

	if e, ok := transitions[trigger{m.screen, key}]; ok {
		if e.needsTasks && len(m.tasks) == 0 {
			m.notice = noticeNoClear
			return m, nil
		}
		return m, m.follow(e)
	}
	m.updateScreen(key)
	return m, nil
}

// follow moves along a transition edge and runs its action.
func (m *Model) follow(e edge) tea.Cmd {
	m.logger.Debug("screen transition", "from", m.screen, "to", e.to)
	cmd := m.enter(e.to)
	if e.action == actionClear {
		m.clearAll()
	}
	return cmd
}

// enter switches screens and refreshes what the new screen shows.
func (m *Model) enter(s Screen) tea.Cmd {
	m.screen = s
	m.notice = ""
	m.marked = make(map[int]bool)
	m.selected = 0
	m.input.Reset()
	m.input.Blur()
	m.refresh()

	if s == ScreenAdd {
		m.input.Placeholder = addPlaceholder
		return m.input.Focus()
	}
	m.input.Placeholder = updatePlaceholder
	return nil
}

// refresh reloads the task snapshot and keeps the cursor on a row.
func (m *Model) refresh() {
	tasks, err := m.svc.Tasks(m.ctx)
	switch {
	case errors.Is(err, service.ErrEmptyList):
		m.tasks = nil
	case err != nil:
		m.fail(err)
		return
	default:
		m.tasks = tasks
	}
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// updateScreen handles keys that do not change screens.
func (m *Model) updateScreen(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return
	}

	switch m.screen {
	case ScreenDelete:
		switch key {
		case " ":
			if len(m.tasks) > 0 {
				m.marked[m.cursor] = !m.marked[m.cursor]
			}
		case "enter", "delete", "x":
			m.removeMarked()
		}
	case ScreenUpdate:
		if key == "enter" {
			m.beginEdit()
		}
	}
}

// updateEditor handles keys while the text input has focus.
func (m *Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		switch m.screen {
		case ScreenAdd:
			m.addTask()
		case ScreenUpdate:
			m.saveEdit()
		}
		return m, nil
	case "esc":
		if m.screen == ScreenUpdate {
			m.cancelEdit()
			return m, nil
		}
		if e, ok := transitions[trigger{m.screen, "esc"}]; ok {
			return m, m.follow(e)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) addTask() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.notice = noticeBlankAdd
		return
	}
	if err := m.svc.AddTask(m.ctx, text); err != nil {
		m.fail(err)
		return
	}
	m.logger.Debug("task added", "position", m.svc.Len(m.ctx))
	m.input.Reset()
	m.notice = noticeAdded
	m.refresh()
}

func (m *Model) removeMarked() {
	positions := make([]int, 0, len(m.marked))
	for i, on := range m.marked {
		if on {
			positions = append(positions, i+1)
		}
	}
	sort.Ints(positions)

	removed, err := m.svc.RemoveTasks(m.ctx, positions)
	switch {
	case errors.Is(err, service.ErrNoSelection):
		m.notice = noticeNoRemoval
		return
	case err != nil:
		m.fail(err)
		return
	}
	m.logger.Debug("tasks removed", "positions", positions)
	m.marked = make(map[int]bool)
	m.notice = fmt.Sprintf("Removed %s.", output.TaskCount(len(removed)))
	m.refresh()
}

func (m *Model) clearAll() {
	n, err := m.svc.Clear(m.ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.logger.Debug("tasks cleared", "count", n)
	m.notice = fmt.Sprintf("Removed %s.", output.TaskCount(n))
	m.refresh()
}

func (m *Model) beginEdit() {
	if len(m.tasks) == 0 {
		m.notice = noticeNoUpdate
		return
	}
	m.selected = m.cursor + 1
	m.input.SetValue(m.tasks[m.cursor].Title)
	m.input.CursorEnd()
	m.input.Focus()
	m.notice = ""
}

func (m *Model) saveEdit() {
	err := m.svc.UpdateTask(m.ctx, m.selected, m.input.Value())
	switch {
	case errors.Is(err, service.ErrNoSelection), errors.Is(err, service.ErrOutOfRange):
		m.notice = noticeNoUpdate
		return
	case errors.Is(err, service.ErrBlankText):
		m.notice = noticeBlankUpdate
		return
	case err != nil:
		m.fail(err)
		return
	}
	m.logger.Debug("task updated", "position", m.selected)
	m.cancelEdit()
	m.notice = noticeUpdated
	m.refresh()
}

func (m *Model) cancelEdit() {
	m.selected = 0
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) fail(err error) {
	m.err = err
	m.notice = "error: " + err.Error()
	m.logger.Error("task operation failed", "err", err)
}
