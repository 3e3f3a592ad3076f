package usecase

import (
	"context"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID string // ID or prefix (required)
}

// ShowTaskOutput contains the task and its neighbourhood in the graph.
// Fields are ordered to minimize memory padding.
type ShowTaskOutput struct {
	Task         *domain.Task
	Dependencies []*domain.Task // Resolved dependencies in stored order
	Missing      []string       // Dependency IDs that no longer resolve
	Dependents   []*domain.Task // Tasks that depend on this one
	Blocked      bool
}

// ShowTask is the use case for showing task details.
type ShowTask struct {
	tasks domain.TaskRepository
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.TaskRepository) *ShowTask {
	return &ShowTask{tasks: tasks}
}

// Execute returns the task details.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	tasks, task, err := shared.LoadTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}
	graph := domain.NewTaskGraph(tasks)

	return &ShowTaskOutput{
		Task:         task,
		Dependencies: graph.Dependencies(task),
		Missing:      graph.MissingDependencies(task),
		Dependents:   graph.Dependents(task.ID),
		Blocked:      graph.IsBlocked(task),
	}, nil
}
