package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// AddDependencyInput contains the parameters for adding a dependency edge.
type AddDependencyInput struct {
	TaskID       string // Dependent task, ID or prefix (required)
	DependencyID string // Task that must complete first, ID or prefix (required)
}

// AddDependencyOutput contains the result of adding a dependency.
type AddDependencyOutput struct {
	Task       *domain.Task
	Dependency *domain.Task
	Added      bool // False if the edge already existed
}

// AddDependency is the use case for adding a dependency between two tasks
// of the same client. It refuses edges that would close a cycle.
type AddDependency struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewAddDependency creates a new AddDependency use case.
func NewAddDependency(tasks domain.TaskRepository, logger domain.Logger) *AddDependency {
	return &AddDependency{tasks: tasks, logger: logger}
}

// Execute validates and persists the edge. On error nothing is saved.
func (uc *AddDependency) Execute(_ context.Context, in AddDependencyInput) (*AddDependencyOutput, error) {
	tasks, task, err := shared.LoadTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	// Resolve within the task's client first; a foreign ID still reaches the graph check.
	taskID := func(t *domain.Task) string { return t.ID }
	dep, err := domain.FindByID(domain.TasksForClient(tasks, task.ClientID), in.DependencyID, taskID, domain.ErrDependencyNotFound)
	if errors.Is(err, domain.ErrDependencyNotFound) {
		dep, err = domain.FindByID(tasks, in.DependencyID, taskID, domain.ErrDependencyNotFound)
	}
	if err != nil {
		return nil, err
	}

	added, err := domain.NewTaskGraph(tasks).AddDependency(task.ID, dep.ID)
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn(task.ClientID, "dependency", fmt.Sprintf("rejected %s -> %s: %v", domain.ShortID(task.ID), domain.ShortID(dep.ID), err))
		}
		return nil, err
	}

	if err := uc.tasks.SaveTasks(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if added && uc.logger != nil {
		uc.logger.Info(task.ClientID, "dependency", fmt.Sprintf("added %s -> %s", domain.ShortID(task.ID), domain.ShortID(dep.ID)))
	}

	return &AddDependencyOutput{Task: task, Dependency: dep, Added: added}, nil
}
