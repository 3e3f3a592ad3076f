package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// SummaryInput contains the parameters for the dashboard summary.
type SummaryInput struct {
	ClientID string // ID or prefix; empty = current client
}

// SummaryOutput contains the derived dashboard figures.
type SummaryOutput struct {
	Summary domain.Summary
}

// Summary is the use case computing a client's dashboard figures.
type Summary struct {
	clients  domain.ClientRepository
	tasks    domain.TaskRepository
	ledger   domain.LedgerRepository
	registry domain.RegistryRepository
	clock    domain.Clock
}

// NewSummary creates a new Summary use case.
func NewSummary(clients domain.ClientRepository, tasks domain.TaskRepository, ledger domain.LedgerRepository, registry domain.RegistryRepository, clock domain.Clock) *Summary {
	return &Summary{clients: clients, tasks: tasks, ledger: ledger, registry: registry, clock: clock}
}

// Execute loads every collection and summarizes the client.
func (uc *Summary) Execute(_ context.Context, in SummaryInput) (*SummaryOutput, error) {
	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}

	li := domain.LedgerInput{Client: client, Today: domain.NewDate(uc.clock.Now())}
	if li.Tasks, err = uc.tasks.LoadTasks(); err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	if li.Payments, err = uc.ledger.LoadPayments(); err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	if li.Advances, err = uc.ledger.LoadAdvances(); err != nil {
		return nil, fmt.Errorf("load advances: %w", err)
	}
	if li.Feedback, err = uc.ledger.LoadFeedback(); err != nil {
		return nil, fmt.Errorf("load feedback: %w", err)
	}
	if li.Reviews, err = uc.registry.LoadReviews(); err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	return &SummaryOutput{Summary: domain.Summarize(li)}, nil
}
