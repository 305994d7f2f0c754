// Package memory implements service.Service over an in-process slice.
// Nothing is persisted; the list lives as long as the Store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"todo/internal/service"
)

var _ service.Service = (*Store)(nil)

// Store is an ordered, gap-free task list owned by a single goroutine.
type Store struct {
	tasks []service.Task
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Tasks implements service.Service.
func (s *Store) Tasks(ctx context.Context) ([]service.Task, error) {
	if len(s.tasks) == 0 {
		return nil, service.ErrEmptyList
	}
	result := make([]service.Task, len(s.tasks))
	copy(result, s.tasks)
	return result, nil
}

// Len implements service.Service.
func (s *Store) Len(ctx context.Context) int {
	return len(s.tasks)
}

// AddTask implements service.Service.
func (s *Store) AddTask(ctx context.Context, title string) error {
	s.tasks = append(s.tasks, service.Task{Title: title})
	return nil
}

// RemoveTask implements service.Service.
func (s *Store) RemoveTask(ctx context.Context, pos int) (service.Task, error) {
	if err := s.checkPosition(pos); err != nil {
		return service.Task{}, err
	}
	i := pos - 1
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return removed, nil
}

// RemoveTasks implements service.Service.
// Returned tasks are in list order.
func (s *Store) RemoveTasks(ctx context.Context, positions []int) ([]service.Task, error) {
	if len(positions) == 0 {
		return nil, service.ErrNoSelection
	}

	// Dedupe and validate before touching the list
	seen := make(map[int]bool, len(positions))
	sorted := make([]int, 0, len(positions))
	for _, pos := range positions {
		if err := s.checkPosition(pos); err != nil {
			return nil, err
		}
		if !seen[pos] {
			seen[pos] = true
			sorted = append(sorted, pos)
		}
	}
	sort.Ints(sorted)

	removed := make([]service.Task, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		idx := sorted[i] - 1
		removed[i] = s.tasks[idx]
		s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	}
	return removed, nil
}

// UpdateTask implements service.Service.
// The stored title is trimmed.
func (s *Store) UpdateTask(ctx context.Context, pos int, title string) error {
	if pos == 0 {
		return service.ErrNoSelection
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return service.ErrBlankText
	}
	if err := s.checkPosition(pos); err != nil {
		return err
	}
	s.tasks[pos-1].Title = title
	return nil
}

// Clear implements service.Service.
func (s *Store) Clear(ctx context.Context) (int, error) {
	n := len(s.tasks)
	s.tasks = nil
	return n, nil
}

func (s *Store) checkPosition(pos int) error {
	if pos < 1 || pos > len(s.tasks) {
		return fmt.Errorf("%w: %d", service.ErrOutOfRange, pos)
	}
	return nil
}
