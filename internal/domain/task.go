// Package domain contains core business entities and interfaces.
package domain

import (
	"slices"
	"strings"
	"time"
)

// Task represents a deliverable tracked for a single client.
// Dependencies hold task IDs, never pointers, so deleting a task leaves
// dangling IDs in its dependents instead of requiring a cascade.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created      time.Time `json:"created" yaml:"created"`                               // Creation time
	DueDate      Date      `json:"dueDate" yaml:"dueDate"`                               // Due date (no time component)
	ID           string    `json:"id" yaml:"id"`                                         // Opaque task ID (immutable)
	ClientID     string    `json:"clientId" yaml:"clientId"`                             // Owning client (immutable)
	Description  string    `json:"description" yaml:"description"`                       // Free text
	Status       Status    `json:"status" yaml:"status"`                                 // Current status
	Priority     Priority  `json:"priority" yaml:"priority"`                             // Priority
	Dependencies []string  `json:"dependencies,omitempty" yaml:"dependencies,omitempty"` // IDs of tasks that must complete first
}

// HasDependency reports whether id is among the task's direct dependencies.
func (t *Task) HasDependency(id string) bool {
	return slices.Contains(t.Dependencies, id)
}

// IsOverdue reports whether the task is past its due date and not completed.
func (t *Task) IsOverdue(today Date) bool {
	if t.Status == StatusCompleted || t.DueDate.IsZero() {
		return false
	}
	return t.DueDate.Before(today)
}

// IsOpen reports whether the task still counts as pending work on the dashboard.
func (t *Task) IsOpen() bool {
	return t.Status == StatusPending || t.Status == StatusInProgress
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	c.Dependencies = slices.Clone(t.Dependencies)
	return &c
}

// TaskPatch lists the mutable fields of a task. Nil fields are left unchanged.
// Fields are ordered to minimize memory padding.
type TaskPatch struct {
	Description *string
	DueDate     *Date
	Priority    *Priority
}

// IsEmpty returns true if the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Description == nil && p.DueDate == nil && p.Priority == nil
}

// Apply validates the patch and applies it to the task.
func (p TaskPatch) Apply(t *Task) error {
	if p.Description != nil {
		desc := strings.TrimSpace(*p.Description)
		if desc == "" {
			return ErrEmptyDescription
		}
		t.Description = desc
	}
	if p.Priority != nil {
		if !p.Priority.IsValid() {
			return ErrInvalidPriority
		}
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	return nil
}

// TasksForClient returns the tasks belonging to clientID, preserving order.
func TasksForClient(tasks []*Task, clientID string) []*Task {
	var out []*Task
	for _, t := range tasks {
		if t.ClientID == clientID {
			out = append(out, t)
		}
	}
	return out
}
