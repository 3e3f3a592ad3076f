package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// CheckDependenciesInput contains the parameters for checking a client's graph.
type CheckDependenciesInput struct {
	ClientID string // ID or prefix; empty = current client
}

// DanglingDependency is a dependency ID that does not resolve to a task of
// the same client.
type DanglingDependency struct {
	TaskID       string
	DependencyID string
	CrossClient  bool // The ID resolves, but to another client's task
}

// CheckDependenciesOutput reports problems in the stored dependency graph.
type CheckDependenciesOutput struct {
	Client   *domain.Client
	Cycle    []string // One cycle, first ID repeated at the end (nil if acyclic)
	Dangling []DanglingDependency
}

// OK reports whether no problem was found.
func (o *CheckDependenciesOutput) OK() bool {
	return len(o.Cycle) == 0 && len(o.Dangling) == 0
}

// CheckDependencies is the use case for auditing a client's dependency graph.
// Stored data only changes through AddDependency, so problems here come from
// deletions (dangling IDs) or hand-edited files.
type CheckDependencies struct {
	tasks   domain.TaskRepository
	clients domain.ClientRepository
}

// NewCheckDependencies creates a new CheckDependencies use case.
func NewCheckDependencies(tasks domain.TaskRepository, clients domain.ClientRepository) *CheckDependencies {
	return &CheckDependencies{tasks: tasks, clients: clients}
}

// Execute audits the client's tasks.
func (uc *CheckDependencies) Execute(_ context.Context, in CheckDependenciesInput) (*CheckDependenciesOutput, error) {
	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}
	all, err := uc.tasks.LoadTasks()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	byID := make(map[string]*domain.Task, len(all))
	for _, t := range all {
		byID[t.ID] = t
	}

	mine := domain.TasksForClient(all, client.ID)
	out := &CheckDependenciesOutput{
		Client: client,
		Cycle:  domain.NewTaskGraph(mine).FindCycle(),
	}
	for _, t := range mine {
		for _, id := range t.Dependencies {
			dep := byID[id]
			if dep != nil && dep.ClientID == client.ID {
				continue
			}
			out.Dangling = append(out.Dangling, DanglingDependency{
				TaskID:       t.ID,
				DependencyID: id,
				CrossClient:  dep != nil,
			})
		}
	}
	return out, nil
}
