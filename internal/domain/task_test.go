package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTaskPatch_Apply(t *testing.T) {
	task := &Task{Description: "old", Priority: PriorityLow}
	due, err := ParseDate("2025-03-01")
	require.NoError(t, err)
	high := PriorityHigh

	err = TaskPatch{Description: strPtr("  new  "), DueDate: &due, Priority: &high}.Apply(task)

	require.NoError(t, err)
	assert.Equal(t, "new", task.Description)
	assert.Equal(t, "2025-03-01", task.DueDate.String())
	assert.Equal(t, PriorityHigh, task.Priority)
}

func TestTaskPatch_Apply_Invalid(t *testing.T) {
	task := &Task{Description: "old"}
	bad := Priority("Urgent")

	assert.ErrorIs(t, TaskPatch{Description: strPtr("   ")}.Apply(task), ErrEmptyDescription)
	assert.ErrorIs(t, TaskPatch{Priority: &bad}.Apply(task), ErrInvalidPriority)
	assert.Equal(t, "old", task.Description)
	assert.True(t, TaskPatch{}.IsEmpty())
}

func TestTask_IsOverdue(t *testing.T) {
	today := NewDate(time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC))
	past := today.AddDays(-1)

	task := &Task{DueDate: past, Status: StatusPending}
	assert.True(t, task.IsOverdue(today))

	task.Status = StatusCompleted
	assert.False(t, task.IsOverdue(today))

	task = &Task{DueDate: today, Status: StatusPending}
	assert.False(t, task.IsOverdue(today), "due today is not overdue")

	task = &Task{Status: StatusPending}
	assert.False(t, task.IsOverdue(today), "no due date is never overdue")
}

func TestTask_Clone(t *testing.T) {
	task := &Task{ID: "a", Dependencies: []string{"b"}}
	c := task.Clone()
	c.Dependencies[0] = "z"
	assert.Equal(t, "b", task.Dependencies[0])
}

func TestTask_JSONRoundTripKeepsFieldNames(t *testing.T) {
	due, _ := ParseDate("2025-01-31")
	task := &Task{
		ID:           "t1",
		ClientID:     "c1",
		Description:  "Design",
		DueDate:      due,
		Status:       StatusInProgress,
		Priority:     PriorityHigh,
		Dependencies: []string{"t0"},
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"clientId":"c1"`)
	assert.Contains(t, string(data), `"dueDate":"2025-01-31"`)
	assert.Contains(t, string(data), `"status":"In Progress"`)

	var got Task
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, task.DueDate, got.DueDate)
	assert.Equal(t, task.Dependencies, got.Dependencies)
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	var d Date
	assert.ErrorIs(t, json.Unmarshal([]byte(`"31/01/2025"`), &d), ErrInvalidDate)
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())
}

func TestFindByID(t *testing.T) {
	tasks := []*Task{{ID: "abc123"}, {ID: "abd456"}, {ID: "xyz"}}

	got, err := FindTask(tasks, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.ID)

	got, err = FindTask(tasks, "xyz")
	require.NoError(t, err)
	assert.Equal(t, "xyz", got.ID)

	_, err = FindTask(tasks, "ab")
	assert.ErrorIs(t, err, ErrAmbiguousID)

	_, err = FindTask(tasks, "q")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = FindTask(tasks, "")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", ShortID("abc"))
	assert.Equal(t, "12345678", ShortID("123456789abc"))
}
