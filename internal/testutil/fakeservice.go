// Package testutil provides testing utilities.
package testutil

import (
	"context"

	"todo/internal/backend/memory"
	"todo/internal/service"
)

var _ service.Service = (*FakeService)(nil)

// FakeService wraps the in-memory store with error injection and a call log.
type FakeService struct {
	store *memory.Store

	// Calls records each method invoked, in order.
	Calls []string

	// Error injection for testing
	TasksErr       error
	AddTaskErr     error
	RemoveTaskErr  error
	RemoveTasksErr error
	UpdateTaskErr  error
	ClearErr       error
}

// NewFakeService creates a FakeService preloaded with titles.
func NewFakeService(titles ...string) *FakeService {
	f := &FakeService{store: memory.New()}
	for _, title := range titles {
		_ = f.store.AddTask(context.Background(), title)
	}
	return f
}

// Titles returns the current titles without recording a call.
func (f *FakeService) Titles() []string {
	tasks, _ := f.store.Tasks(context.Background())
	titles := make([]string, len(tasks))
	for i, t := range tasks {
		titles[i] = t.Title
	}
	return titles
}

// Tasks implements service.Service.
func (f *FakeService) Tasks(ctx context.Context) ([]service.Task, error) {
	f.Calls = append(f.Calls, "Tasks")
	if f.TasksErr != nil {
		return nil, f.TasksErr
	}
	return f.store.Tasks(ctx)
}

// Len implements service.Service.
func (f *FakeService) Len(ctx context.Context) int {
	return f.store.Len(ctx)
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, title string) error {
	f.Calls = append(f.Calls, "AddTask")
	if f.AddTaskErr != nil {
		return f.AddTaskErr
	}
	return f.store.AddTask(ctx, title)
}

// RemoveTask implements service.Service.
func (f *FakeService) RemoveTask(ctx context.Context, pos int) (service.Task, error) {
	f.Calls = append(f.Calls, "RemoveTask")
	if f.RemoveTaskErr != nil {
		return service.Task{}, f.RemoveTaskErr
	}
	return f.store.RemoveTask(ctx, pos)
}

// RemoveTasks implements service.Service.
func (f *FakeService) RemoveTasks(ctx context.Context, positions []int) ([]service.Task, error) {
	f.Calls = append(f.Calls, "RemoveTasks")
	if f.RemoveTasksErr != nil {
		return nil, f.RemoveTasksErr
	}
	return f.store.RemoveTasks(ctx, positions)
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, pos int, title string) error {
	f.Calls = append(f.Calls, "UpdateTask")
	if f.UpdateTaskErr != nil {
		return f.UpdateTaskErr
	}
	return f.store.UpdateTask(ctx, pos, title)
}

// Clear implements service.Service.
func (f *FakeService) Clear(ctx context.Context) (int, error) {
	f.Calls = append(f.Calls, "Clear")
	if f.ClearErr != nil {
		return 0, f.ClearErr
	}
	return f.store.Clear(ctx)
}
