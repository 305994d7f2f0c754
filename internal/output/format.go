// Package output provides formatters for console output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

// FormatTask formats a numbered task line.
// Format: "{N}. {TITLE}\n"
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%d. %s\n", num, DisplayTitle(task.Title))
}

// FormatTasks formats tasks numbered from 1.
func FormatTasks(w io.Writer, tasks []service.Task) {
	for i, task := range tasks {
		FormatTask(w, i+1, task)
	}
}

// TaskCount returns "1 task" or "N tasks".
func TaskCount(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

// DisplayTitle flattens line breaks so one task always takes one line.
// Titles are otherwise shown verbatim, including blank ones.
func DisplayTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	return strings.ReplaceAll(title, "\n", " ")
}
