package service

import "context"

// Service defines the task list manager.
// Positions are 1-based everywhere in this interface.
// Front ends never touch the backing slice directly.
type Service interface {
	// Tasks returns the tasks in insertion order.
	// Returns ErrEmptyList if there are none.
	Tasks(ctx context.Context) ([]Task, error)

	// Len returns the number of tasks.
	Len(ctx context.Context) int

	// AddTask appends a task. Title is stored verbatim.
	AddTask(ctx context.Context, title string) error

	// RemoveTask removes the task at pos and returns it.
	// Returns ErrOutOfRange if pos is outside [1, Len].
	RemoveTask(ctx context.Context, pos int) (Task, error)

	// RemoveTasks removes every task in positions.
	// Either all positions are valid and removed, or nothing changes.
	RemoveTasks(ctx context.Context, positions []int) ([]Task, error)

	// UpdateTask replaces the title of the task at pos.
	// pos 0 means nothing is selected (ErrNoSelection); blank titles are
	// rejected with ErrBlankText.
	UpdateTask(ctx context.Context, pos int, title string) error

	// Clear removes all tasks and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
