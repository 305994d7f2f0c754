// Package service defines the task list operations shared by every front end.
package service

// Task represents a single to-do item. Its position in the list is its only
// identity.
type Task struct {
	Title string
}
