package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// EditTaskInput contains the parameters for editing a task.
// Only non-nil patch fields are updated.
type EditTaskInput struct {
	Patch  domain.TaskPatch // Fields to change
	TaskID string           // ID or prefix (required)
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task // The updated task
}

// EditTask is the use case for editing an existing task.
type EditTask struct {
	tasks    domain.TaskRepository
	notifier domain.Notifier
	ids      domain.IDGenerator
	clock    domain.Clock
	logger   domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository, notifier domain.Notifier, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *EditTask {
	return &EditTask{
		tasks:    tasks,
		notifier: notifier,
		ids:      ids,
		clock:    clock,
		logger:   logger,
	}
}

// Execute applies the patch and saves the task collection.
// A changed description records a notification.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.Patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	tasks, task, err := shared.LoadTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	before := task.Description
	if err := in.Patch.Apply(task); err != nil {
		return nil, err
	}

	if err := uc.tasks.SaveTasks(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ClientID, "task", fmt.Sprintf("updated %s", domain.ShortID(task.ID)))
	}
	if task.Description != before {
		shared.Notify(uc.notifier, uc.ids, uc.clock, uc.logger, task.ClientID,
			fmt.Sprintf("Task description changed: %q -> %q", before, task.Description))
	}

	return &EditTaskOutput{Task: task}, nil
}
