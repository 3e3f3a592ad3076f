package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// NewTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type NewTaskInput struct {
	DueDate     *domain.Date     // Due date (nil = today + configured offset)
	Priority    *domain.Priority // Priority (nil = configured default)
	ClientID    string           // ID or prefix; empty = current client
	Description string           // Task description (required)
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	Task *domain.Task
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	tasks    domain.TaskRepository
	clients  domain.ClientRepository
	ids      domain.IDGenerator
	clock    domain.Clock
	logger   domain.Logger
	defaults domain.TasksConfig
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(
	tasks domain.TaskRepository,
	clients domain.ClientRepository,
	ids domain.IDGenerator,
	clock domain.Clock,
	logger domain.Logger,
	defaults domain.TasksConfig,
) *NewTask {
	return &NewTask{
		tasks:    tasks,
		clients:  clients,
		ids:      ids,
		clock:    clock,
		logger:   logger,
		defaults: defaults,
	}
}

// Execute creates a pending task with no dependencies.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, domain.ErrEmptyDescription
	}

	priority := uc.defaults.DefaultPriority
	if in.Priority != nil {
		priority = *in.Priority
	}
	if !priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}

	tasks, err := uc.tasks.LoadTasks()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	now := uc.clock.Now()
	due := domain.NewDate(now).AddDays(uc.defaults.DueInDays)
	if in.DueDate != nil {
		due = *in.DueDate
	}

	task := &domain.Task{
		ID:          uc.ids.NewID(),
		ClientID:    client.ID,
		Description: desc,
		DueDate:     due,
		Status:      domain.StatusPending,
		Priority:    priority,
		Created:     now,
	}
	tasks = append(tasks, task)

	if err := uc.tasks.SaveTasks(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(client.ID, "task", fmt.Sprintf("created %s: %q", domain.ShortID(task.ID), desc))
	}

	return &NewTaskOutput{Task: task}, nil
}
