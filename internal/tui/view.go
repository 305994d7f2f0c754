package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo/internal/output"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e5e7eb"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fbbf24"))
	markedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171"))
	noticeStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#60a5fa"))
)

// welcomeItems label the welcome screen keys, in display order.
var welcomeItems = []struct{ key, label string }{
	{"1", "View tasks"},
	{"2", "Add a task"},
	{"3", "Delete a task"},
	{"4", "Update a task"},
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("To-Do List"))
	b.WriteString("\n\n")

	switch m.screen {
	case ScreenWelcome:
		m.writeWelcome(&b)
	case ScreenView:
		m.writeView(&b)
	case ScreenAdd:
		m.writeAdd(&b)
	case ScreenDelete:
		m.writeDelete(&b)
	case ScreenUpdate:
		m.writeUpdate(&b)
	case ScreenConfirmClear:
		m.writeConfirmClear(&b)
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(footer(m.screen, m.input.Focused())))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) writeWelcome(b *strings.Builder) {
	b.WriteString(headerStyle.Render("Welcome"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("What would you like to do?"))
	b.WriteString("\n\n")
	for _, item := range welcomeItems {
		fmt.Fprintf(b, "  [%s] %s\n", item.key, item.label)
	}
}

func (m *Model) writeView(b *strings.Builder) {
	b.WriteString(headerStyle.Render("View Tasks"))
	b.WriteString("\n\n")
	if len(m.tasks) == 0 {
		b.WriteString(mutedStyle.Render("Your to-do list is empty!"))
		b.WriteString("\n")
	}
	for i, task := range m.tasks {
		fmt.Fprintf(b, "  %d. %s\n", i+1, output.DisplayTitle(task.Title))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(output.TaskCount(len(m.tasks))))
	b.WriteString("\n")
}

func (m *Model) writeAdd(b *strings.Builder) {
	b.WriteString(headerStyle.Render("Add Task"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(output.TaskCount(len(m.tasks))))
	b.WriteString("\n")
}

func (m *Model) writeDelete(b *strings.Builder) {
	b.WriteString(headerStyle.Render("Delete Tasks"))
	b.WriteString("\n\n")
	if len(m.tasks) == 0 {
		b.WriteString(mutedStyle.Render("No tasks to remove."))
		b.WriteString("\n")
		return
	}
	for i, task := range m.tasks {
		box := "[ ]"
		if m.marked[i] {
			box = markedStyle.Render("[x]")
		}
		b.WriteString(m.row(i, fmt.Sprintf("%s %d. %s", box, i+1, output.DisplayTitle(task.Title))))
	}
}

func (m *Model) writeUpdate(b *strings.Builder) {
	b.WriteString(headerStyle.Render("Update Task"))
	b.WriteString("\n\n")
	if len(m.tasks) == 0 {
		b.WriteString(mutedStyle.Render("Your to-do list is empty!"))
		b.WriteString("\n")
	}
	for i, task := range m.tasks {
		b.WriteString(m.row(i, fmt.Sprintf("%d. %s", i+1, output.DisplayTitle(task.Title))))
	}
	if m.input.Focused() {
		b.WriteString("\n")
		fmt.Fprintf(b, "Editing task %d:\n", m.selected)
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
}

func (m *Model) writeConfirmClear(b *strings.Builder) {
	b.WriteString(headerStyle.Render("Clear All"))
	b.WriteString("\n\n")
	fmt.Fprintf(b, "Remove all tasks (%s)? [y/n]\n", output.TaskCount(len(m.tasks)))
}

// row renders one list line with the cursor marker.
func (m *Model) row(i int, text string) string {
	if i == m.cursor {
		return cursorStyle.Render("> "+text) + "\n"
	}
	return "  " + text + "\n"
}

func footer(s Screen, editing bool) string {
	switch {
	case s == ScreenWelcome:
		return "1-4 choose • q quit"
	case s == ScreenAdd:
		return "enter add • esc back"
	case s == ScreenUpdate && editing:
		return "enter save • esc cancel"
	case s == ScreenUpdate:
		return "↑/↓ move • enter edit • esc back • q quit"
	case s == ScreenDelete:
		return "↑/↓ move • space select • enter remove • c clear all • esc back • q quit"
	case s == ScreenConfirmClear:
		return "y confirm • n cancel"
	default:
		return "esc back • q quit"
	}
}
