package service

import "errors"

var (
	// ErrEmptyList is returned when listing a list with no tasks.
	ErrEmptyList = errors.New("task list is empty")

	// ErrInvalidNumber is returned when a position is not a positive integer.
	ErrInvalidNumber = errors.New("invalid task number")

	// ErrOutOfRange is returned when a position does not name a task.
	ErrOutOfRange = errors.New("task number out of range")

	// ErrBlankText is returned when a title is empty or whitespace-only.
	ErrBlankText = errors.New("task text required")

	// ErrNoSelection is returned when an update or removal names no task.
	ErrNoSelection = errors.New("no task selected")
)
