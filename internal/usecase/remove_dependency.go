package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// RemoveDependencyInput contains the parameters for removing a dependency edge.
type RemoveDependencyInput struct {
	TaskID       string // Dependent task, ID or prefix (required)
	DependencyID string // Dependency ID or prefix; may name a deleted task
}

// RemoveDependencyOutput contains the result of removing a dependency.
type RemoveDependencyOutput struct {
	Task         *domain.Task
	DependencyID string // Resolved dependency ID ("" if nothing matched)
	Removed      bool   // False if the edge did not exist
}

// RemoveDependency is the use case for removing a dependency edge.
// Removing an absent edge is a no-op.
type RemoveDependency struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewRemoveDependency creates a new RemoveDependency use case.
func NewRemoveDependency(tasks domain.TaskRepository, logger domain.Logger) *RemoveDependency {
	return &RemoveDependency{tasks: tasks, logger: logger}
}

// Execute removes the edge and persists the collection.
func (uc *RemoveDependency) Execute(_ context.Context, in RemoveDependencyInput) (*RemoveDependencyOutput, error) {
	tasks, task, err := shared.LoadTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	// Resolve against the task's own dependency list so that dangling IDs
	// of deleted tasks can still be removed.
	depID, err := domain.FindByID(task.Dependencies, in.DependencyID, func(id string) string { return id }, domain.ErrDependencyNotFound)
	switch {
	case errors.Is(err, domain.ErrDependencyNotFound):
		depID = in.DependencyID
	case err != nil:
		return nil, err
	}

	removed, err := domain.NewTaskGraph(tasks).RemoveDependency(task.ID, depID)
	if err != nil {
		return nil, err
	}

	if err := uc.tasks.SaveTasks(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	out := &RemoveDependencyOutput{Task: task, Removed: removed}
	if removed {
		out.DependencyID = depID
		if uc.logger != nil {
			uc.logger.Info(task.ClientID, "dependency", fmt.Sprintf("removed %s -> %s", domain.ShortID(task.ID), domain.ShortID(depID)))
		}
	}
	return out, nil
}
