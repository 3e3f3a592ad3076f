package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// UpdateStatusInput contains the parameters for changing a task's status.
type UpdateStatusInput struct {
	TaskID string        // ID or prefix (required)
	Status domain.Status // New status (required)
}

// UpdateStatusOutput contains the result of a status change.
// Fields are ordered to minimize memory padding.
type UpdateStatusOutput struct {
	Task     *domain.Task
	Blockers []*domain.Task // Incomplete dependencies at the time of the change
	Previous domain.Status
}

// UpdateStatus is the use case for changing a task's status.
// Every transition is allowed under the advisory policy; under the strict
// policy a blocked task cannot move to In Progress or Completed.
type UpdateStatus struct {
	tasks    domain.TaskRepository
	notifier domain.Notifier
	ids      domain.IDGenerator
	clock    domain.Clock
	logger   domain.Logger
	policy   domain.BlockingPolicy
}

// NewUpdateStatus creates a new UpdateStatus use case.
func NewUpdateStatus(
	tasks domain.TaskRepository,
	notifier domain.Notifier,
	ids domain.IDGenerator,
	clock domain.Clock,
	logger domain.Logger,
	policy domain.BlockingPolicy,
) *UpdateStatus {
	return &UpdateStatus{
		tasks:    tasks,
		notifier: notifier,
		ids:      ids,
		clock:    clock,
		logger:   logger,
		policy:   policy,
	}
}

// Execute changes the status, persists the collection and records a
// notification when the status actually changed.
func (uc *UpdateStatus) Execute(_ context.Context, in UpdateStatusInput) (*UpdateStatusOutput, error) {
	if !in.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	tasks, task, err := shared.LoadTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	blockers := domain.NewTaskGraph(tasks).Blockers(task)
	if uc.policy == domain.BlockingStrict && in.Status.IsActive() && len(blockers) > 0 {
		return nil, fmt.Errorf("%w: waiting on %s", domain.ErrTaskBlocked, joinShortIDs(blockers))
	}

	prev := task.Status
	task.Status = in.Status

	if err := uc.tasks.SaveTasks(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if prev != in.Status {
		if uc.logger != nil {
			uc.logger.Info(task.ClientID, "task", fmt.Sprintf("%s: %s -> %s", domain.ShortID(task.ID), prev, in.Status))
		}
		shared.Notify(uc.notifier, uc.ids, uc.clock, uc.logger, task.ClientID,
			fmt.Sprintf("Task %q status changed from %s to %s", task.Description, prev, in.Status))
	}

	return &UpdateStatusOutput{Task: task, Previous: prev, Blockers: blockers}, nil
}

func joinShortIDs(tasks []*domain.Task) string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = domain.ShortID(t.ID)
	}
	return strings.Join(ids, ", ")
}
