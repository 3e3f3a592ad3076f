package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// ListTasksInput contains the parameters for listing tasks.
// Fields are ordered to minimize memory padding.
type ListTasksInput struct {
	Status      *domain.Status // Only tasks with this status (nil = all)
	ClientID    string         // ID or prefix; empty = current client
	BlockedOnly bool           // Only tasks with an incomplete dependency
}

// TaskView is a task with its derived blocked state.
type TaskView struct {
	Task    *domain.Task
	Blocked bool
}

// ListTasksOutput contains the listed tasks in stored order.
type ListTasksOutput struct {
	Client *domain.Client
	Tasks  []TaskView
}

// ListTasks is the use case for listing a client's tasks.
type ListTasks struct {
	tasks   domain.TaskRepository
	clients domain.ClientRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository, clients domain.ClientRepository) *ListTasks {
	return &ListTasks{tasks: tasks, clients: clients}
}

// Execute returns the client's tasks matching the filters.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}

	all, err := uc.tasks.LoadTasks()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	graph := domain.NewTaskGraph(all)

	out := &ListTasksOutput{Client: client}
	for _, t := range domain.TasksForClient(all, client.ID) {
		if in.Status != nil && t.Status != *in.Status {
			continue
		}
		blocked := graph.IsBlocked(t)
		if in.BlockedOnly && !blocked {
			continue
		}
		out.Tasks = append(out.Tasks, TaskView{Task: t, Blocked: blocked})
	}
	return out, nil
}
