// Package shared provides shared utilities for use cases.
package shared

import (
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
)

// LoadTask loads the whole task collection and resolves idOrPrefix in it.
// The returned task points into the returned slice, so callers can mutate
// it and save the slice back.
//
//	tasks, task, err := shared.LoadTask(repo, in.TaskID)
//	if err != nil { return nil, err }
func LoadTask(repo domain.TaskRepository, idOrPrefix string) ([]*domain.Task, *domain.Task, error) {
	tasks, err := repo.LoadTasks()
	if err != nil {
		return nil, nil, fmt.Errorf("load tasks: %w", err)
	}
	task, err := domain.FindTask(tasks, idOrPrefix)
	if err != nil {
		return nil, nil, err
	}
	return tasks, task, nil
}
