package memory_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"todo/internal/backend/memory"
	"todo/internal/service"
)

func titles(t *testing.T, s *memory.Store) []string {
	t.Helper()
	tasks, err := s.Tasks(context.Background())
	if errors.Is(err, service.ErrEmptyList) {
		return nil
	}
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result := make([]string, len(tasks))
	for i, task := range tasks {
		result[i] = task.Title
	}
	return result
}

func newStore(t *testing.T, items ...string) *memory.Store {
	t.Helper()
	s := memory.New()
	for _, item := range items {
		if err := s.AddTask(context.Background(), item); err != nil {
			t.Fatalf("AddTask(%q): %v", item, err)
		}
	}
	return s
}

func TestStore_EmptyList(t *testing.T) {
	s := memory.New()

	_, err := s.Tasks(context.Background())
	if !errors.Is(err, service.ErrEmptyList) {
		t.Errorf("expected ErrEmptyList, got %v", err)
	}
	if n := s.Len(context.Background()); n != 0 {
		t.Errorf("expected length 0, got %d", n)
	}
}

func TestStore_AddKeepsInsertionOrder(t *testing.T) {
	items := []string{"c", "a", "b", "a", "", "  spaced  "}
	s := newStore(t, items...)

	got := titles(t, s)
	if !reflect.DeepEqual(got, items) {
		t.Errorf("expected %q, got %q", items, got)
	}
}

func TestStore_TasksReturnsCopy(t *testing.T) {
	s := newStore(t, "one")

	tasks, _ := s.Tasks(context.Background())
	tasks[0].Title = "changed"

	if got := titles(t, s); got[0] != "one" {
		t.Errorf("store mutated through snapshot: %q", got)
	}
}

func TestStore_RemoveShiftsLaterTasks(t *testing.T) {
	s := newStore(t, "a", "b", "c", "d")

	removed, err := s.RemoveTask(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.Title != "b" {
		t.Errorf("expected removed %q, got %q", "b", removed.Title)
	}

	want := []string{"a", "c", "d"}
	if got := titles(t, s); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStore_RemoveOutOfRangeLeavesListUnchanged(t *testing.T) {
	for _, pos := range []int{-1, 0, 4, 100} {
		s := newStore(t, "a", "b", "c")

		_, err := s.RemoveTask(context.Background(), pos)
		if !errors.Is(err, service.ErrOutOfRange) {
			t.Errorf("pos %d: expected ErrOutOfRange, got %v", pos, err)
		}
		want := []string{"a", "b", "c"}
		if got := titles(t, s); !reflect.DeepEqual(got, want) {
			t.Errorf("pos %d: expected %q, got %q", pos, want, got)
		}
	}
}

func TestStore_RemoveAllYieldsEmptyList(t *testing.T) {
	s := newStore(t, "a", "b", "c")

	for s.Len(context.Background()) > 0 {
		before := s.Len(context.Background())
		if _, err := s.RemoveTask(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if after := s.Len(context.Background()); after != before-1 {
			t.Fatalf("expected length %d, got %d", before-1, after)
		}
	}

	_, err := s.Tasks(context.Background())
	if !errors.Is(err, service.ErrEmptyList) {
		t.Errorf("expected ErrEmptyList, got %v", err)
	}
}

func TestStore_Scenario(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, "Buy milk", "Walk dog")

	if got := titles(t, s); !reflect.DeepEqual(got, []string{"Buy milk", "Walk dog"}) {
		t.Fatalf("unexpected tasks %q", got)
	}

	removed, err := s.RemoveTask(ctx, 1)
	if err != nil || removed.Title != "Buy milk" {
		t.Fatalf("expected to remove %q, got %q (%v)", "Buy milk", removed.Title, err)
	}
	if got := titles(t, s); !reflect.DeepEqual(got, []string{"Walk dog"}) {
		t.Fatalf("unexpected tasks %q", got)
	}

	if _, err := s.RemoveTask(ctx, 5); !errors.Is(err, service.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if got := titles(t, s); !reflect.DeepEqual(got, []string{"Walk dog"}) {
		t.Errorf("unexpected tasks %q", got)
	}
}

func TestStore_RemoveTasks(t *testing.T) {
	s := newStore(t, "a", "b", "c", "d", "e")

	removed, err := s.RemoveTasks(context.Background(), []int{4, 2, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var removedTitles []string
	for _, task := range removed {
		removedTitles = append(removedTitles, task.Title)
	}
	if want := []string{"b", "d"}; !reflect.DeepEqual(removedTitles, want) {
		t.Errorf("expected removed %q, got %q", want, removedTitles)
	}
	if want := []string{"a", "c", "e"}; !reflect.DeepEqual(titles(t, s), want) {
		t.Errorf("expected %q, got %q", want, titles(t, s))
	}
}

func TestStore_RemoveTasksRejectsWholeSelection(t *testing.T) {
	s := newStore(t, "a", "b")

	if _, err := s.RemoveTasks(context.Background(), []int{1, 3}); !errors.Is(err, service.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := s.RemoveTasks(context.Background(), nil); !errors.Is(err, service.ErrNoSelection) {
		t.Errorf("expected ErrNoSelection, got %v", err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(titles(t, s), want) {
		t.Errorf("expected %q, got %q", want, titles(t, s))
	}
}

func TestStore_UpdateTask(t *testing.T) {
	tests := []struct {
		name    string
		pos     int
		title   string
		wantErr error
		want    []string
	}{
		{name: "replaces and trims", pos: 2, title: "  Walk cat ", want: []string{"Buy milk", "Walk cat"}},
		{name: "no selection", pos: 0, title: "x", wantErr: service.ErrNoSelection},
		{name: "no selection wins over blank", pos: 0, title: "  ", wantErr: service.ErrNoSelection},
		{name: "blank text", pos: 1, title: " \t ", wantErr: service.ErrBlankText},
		{name: "empty text", pos: 1, title: "", wantErr: service.ErrBlankText},
		{name: "out of range", pos: 3, title: "x", wantErr: service.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, "Buy milk", "Walk dog")

			err := s.UpdateTask(context.Background(), tt.pos, tt.title)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if want := []string{"Buy milk", "Walk dog"}; !reflect.DeepEqual(titles(t, s), want) {
					t.Errorf("list mutated: %q", titles(t, s))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := titles(t, s); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStore_Clear(t *testing.T) {
	s := newStore(t, "a", "b", "c")

	n, err := s.Clear(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 removed, got %d", n)
	}
	if _, err := s.Tasks(context.Background()); !errors.Is(err, service.ErrEmptyList) {
		t.Errorf("expected ErrEmptyList, got %v", err)
	}
}
