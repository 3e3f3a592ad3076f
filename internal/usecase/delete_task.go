package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID string // ID or prefix (required)
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task       *domain.Task   // The deleted task
	Dependents []*domain.Task // Tasks left holding a dangling reference to it
}

// DeleteTask is the use case for deleting a task.
// Dependents keep the deleted ID; it is ignored when computing blocked state.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{tasks: tasks, logger: logger}
}

// Execute removes the task from the collection.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	tasks, task, err := shared.LoadTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}
	dependents := domain.NewTaskGraph(tasks).Dependents(task.ID)

	tasks = slices.DeleteFunc(tasks, func(t *domain.Task) bool { return t.ID == task.ID })
	if err := uc.tasks.SaveTasks(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ClientID, "task", fmt.Sprintf("deleted %s: %q", domain.ShortID(task.ID), task.Description))
		for _, d := range dependents {
			uc.logger.Debug(task.ClientID, "task", fmt.Sprintf("%s now references missing task %s", domain.ShortID(d.ID), domain.ShortID(task.ID)))
		}
	}

	return &DeleteTaskOutput{Task: task, Dependents: dependents}, nil
}
