package domain

import "strings"

// Status represents the lifecycle state of a task.
// Every transition is permitted and Completed tasks can be reopened.
type Status string

const (
	StatusPending    Status = "Pending"     // Created, not started
	StatusInProgress Status = "In Progress" // Being worked on
	StatusCompleted  Status = "Completed"   // Done
	StatusOnHold     Status = "On Hold"     // Paused
)

// AllStatuses returns all valid status values in display order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusInProgress,
		StatusCompleted,
		StatusOnHold,
	}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	default:
		return false
	}
}

// IsActive returns true if moving into this status means work is under way.
// The strict blocking policy refuses these for blocked tasks.
func (s Status) IsActive() bool {
	return s == StatusInProgress || s == StatusCompleted
}

// Next returns the following status in display order, wrapping around.
func (s Status) Next() Status {
	all := AllStatuses()
	for i, st := range all {
		if st == s {
			return all[(i+1)%len(all)]
		}
	}
	return StatusPending
}

// ParseStatus accepts the stored form ("In Progress") as well as
// CLI-friendly spellings ("in_progress", "in-progress", "inprogress").
func ParseStatus(s string) (Status, error) {
	switch normalizeEnum(s) {
	case "pending", "todo":
		return StatusPending, nil
	case "inprogress", "started":
		return StatusInProgress, nil
	case "completed", "done":
		return StatusCompleted, nil
	case "onhold", "hold":
		return StatusOnHold, nil
	}
	return "", ErrInvalidStatus
}

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Rank orders priorities for sorting; higher is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// ParsePriority parses a priority case-insensitively.
func ParsePriority(s string) (Priority, error) {
	switch normalizeEnum(s) {
	case "low":
		return PriorityLow, nil
	case "medium", "med":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return "", ErrInvalidPriority
}

// normalizeEnum lowercases s and drops separators.
func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}
