package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskUseCase(f *fixture) *usecase.NewTask {
	return usecase.NewNewTask(f.store, f.store, f.ids, f.clock, f.logger, domain.NewDefaultConfig().Tasks)
}

func TestNewTask_Execute(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		f := newFixture()
		f.store.AddClient("c1", "Acme")

		out, err := newTaskUseCase(f).Execute(context.Background(), usecase.NewTaskInput{
			Description: " Design logo ",
		})

		require.NoError(t, err)
		task := out.Task
		assert.Equal(t, "id-1", task.ID)
		assert.Equal(t, "c1", task.ClientID)
		assert.Equal(t, "Design logo", task.Description)
		assert.Equal(t, domain.StatusPending, task.Status)
		assert.Equal(t, domain.PriorityMedium, task.Priority)
		assert.Equal(t, "2026-03-17", task.DueDate.String())
		assert.Empty(t, task.Dependencies)
		assert.Equal(t, testNow, task.Created)
		require.Len(t, f.store.Tasks, 1)
	})

	t.Run("uses explicit values", func(t *testing.T) {
		f := newFixture()
		f.store.AddClient("c1", "Acme")
		f.store.AddClient("c2", "Globex")

		out, err := newTaskUseCase(f).Execute(context.Background(), usecase.NewTaskInput{
			ClientID:    "c2",
			Description: "Ship it",
			DueDate:     mustDate(t, "2026-04-01"),
			Priority:    ptr(domain.PriorityHigh),
		})

		require.NoError(t, err)
		assert.Equal(t, "c2", out.Task.ClientID)
		assert.Equal(t, "2026-04-01", out.Task.DueDate.String())
		assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		f := newFixture()
		f.store.AddClient("c1", "Acme")

		_, err := newTaskUseCase(f).Execute(context.Background(), usecase.NewTaskInput{Description: ""})

		assert.ErrorIs(t, err, domain.ErrEmptyDescription)
	})

	t.Run("requires a client", func(t *testing.T) {
		f := newFixture()

		_, err := newTaskUseCase(f).Execute(context.Background(), usecase.NewTaskInput{Description: "x"})

		assert.ErrorIs(t, err, domain.ErrNoClientSelected)
	})

	t.Run("wraps save error", func(t *testing.T) {
		f := newFixture()
		f.store.AddClient("c1", "Acme")
		f.store.SaveTasksErr = errors.New("read-only")

		_, err := newTaskUseCase(f).Execute(context.Background(), usecase.NewTaskInput{Description: "x"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "save tasks")
	})
}

func TestListTasks_Execute(t *testing.T) {
	f := newFixture()
	f.store.AddClient("c1", "Acme")
	f.store.AddClient("c2", "Globex")
	f.store.AddTask("t1", "c1")
	f.store.AddTask("t2", "c1", "t1")
	f.store.AddTask("t3", "c1", "gone")
	f.store.AddTask("t4", "c2")
	f.store.Tasks[0].Status = domain.StatusInProgress
	uc := usecase.NewListTasks(f.store, f.store)

	tests := []struct {
		name  string
		in    usecase.ListTasksInput
		want  []string
		block []bool
	}{
		{"all for current client", usecase.ListTasksInput{}, []string{"t1", "t2", "t3"}, []bool{false, true, false}},
		{"other client", usecase.ListTasksInput{ClientID: "c2"}, []string{"t4"}, []bool{false}},
		{"status filter", usecase.ListTasksInput{Status: ptr(domain.StatusPending)}, []string{"t2", "t3"}, []bool{true, false}},
		{"blocked only", usecase.ListTasksInput{BlockedOnly: true}, []string{"t2"}, []bool{true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(context.Background(), tt.in)
			require.NoError(t, err)

			var ids []string
			var blocked []bool
			for _, v := range out.Tasks {
				ids = append(ids, v.Task.ID)
				blocked = append(blocked, v.Blocked)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, tt.block, blocked)
		})
	}
}

func TestShowTask_Execute(t *testing.T) {
	f := newFixture()
	f.store.AddTask("t1", "c1")
	f.store.AddTask("t2", "c1", "t1", "deleted")
	f.store.AddTask("t3", "c1", "t2")
	uc := usecase.NewShowTask(f.store)

	out, err := uc.Execute(context.Background(), usecase.ShowTaskInput{TaskID: "t2"})

	require.NoError(t, err)
	assert.Equal(t, "t2", out.Task.ID)
	require.Len(t, out.Dependencies, 1)
	assert.Equal(t, "t1", out.Dependencies[0].ID)
	assert.Equal(t, []string{"deleted"}, out.Missing)
	require.Len(t, out.Dependents, 1)
	assert.Equal(t, "t3", out.Dependents[0].ID)
	assert.True(t, out.Blocked)

	_, err = uc.Execute(context.Background(), usecase.ShowTaskInput{TaskID: "t"})
	assert.ErrorIs(t, err, domain.ErrAmbiguousID)
}

func TestEditTask_Execute(t *testing.T) {
	t.Run("description change notifies", func(t *testing.T) {
		f := newFixture()
		f.store.AddTask("t1", "c1")
		uc := usecase.NewEditTask(f.store, f.notifier, f.ids, f.clock, f.logger)

		out, err := uc.Execute(context.Background(), usecase.EditTaskInput{
			TaskID: "t1",
			Patch:  domain.TaskPatch{Description: ptr("New text")},
		})

		require.NoError(t, err)
		assert.Equal(t, "New text", out.Task.Description)
		assert.Equal(t, "New text", f.store.FindTask("t1").Description)
		require.Len(t, f.notifier.Notifications, 1)
		assert.Equal(t, "c1", f.notifier.Notifications[0].ClientID)
		assert.Contains(t, f.notifier.Notifications[0].Message, "New text")
	})

	t.Run("other fields do not notify", func(t *testing.T) {
		f := newFixture()
		f.store.AddTask("t1", "c1")
		uc := usecase.NewEditTask(f.store, f.notifier, f.ids, f.clock, f.logger)

		_, err := uc.Execute(context.Background(), usecase.EditTaskInput{
			TaskID: "t1",
			Patch: domain.TaskPatch{
				Priority: ptr(domain.PriorityLow),
				DueDate:  mustDate(t, "2026-05-05"),
			},
		})

		require.NoError(t, err)
		task := f.store.FindTask("t1")
		assert.Equal(t, domain.PriorityLow, task.Priority)
		assert.Equal(t, "2026-05-05", task.DueDate.String())
		assert.Empty(t, f.notifier.Notifications)
	})

	t.Run("validation errors leave store unchanged", func(t *testing.T) {
		f := newFixture()
		f.store.AddTask("t1", "c1")
		uc := usecase.NewEditTask(f.store, f.notifier, f.ids, f.clock, f.logger)

		_, err := uc.Execute(context.Background(), usecase.EditTaskInput{TaskID: "t1"})
		assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)

		_, err = uc.Execute(context.Background(), usecase.EditTaskInput{
			TaskID: "t1",
			Patch:  domain.TaskPatch{Priority: ptr(domain.Priority("Urgent"))},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidPriority)
		assert.Equal(t, 0, f.store.SaveTasksN)
	})
}

func TestDeleteTask_DoesNotCascade(t *testing.T) {
	f := newFixture()
	f.store.AddTask("t1", "c1")
	f.store.AddTask("t2", "c1", "t1")
	uc := usecase.NewDeleteTask(f.store, f.logger)

	out, err := uc.Execute(context.Background(), usecase.DeleteTaskInput{TaskID: "t1"})

	require.NoError(t, err)
	assert.Equal(t, "t1", out.Task.ID)
	require.Len(t, out.Dependents, 1)
	assert.Equal(t, "t2", out.Dependents[0].ID)

	require.Len(t, f.store.Tasks, 1)
	t2 := f.store.FindTask("t2")
	assert.Equal(t, []string{"t1"}, t2.Dependencies) // Dangling reference kept
	assert.False(t, domain.NewTaskGraph(f.store.Tasks).IsBlocked(t2))
}
