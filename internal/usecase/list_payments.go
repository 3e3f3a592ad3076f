package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// ListPaymentsInput contains the parameters for listing payments.
type ListPaymentsInput struct {
	ClientID string // ID or prefix; empty = current client
}

// ListPaymentsOutput contains the client's payments in stored order.
type ListPaymentsOutput struct {
	Client   *domain.Client
	Payments []*domain.Payment
}

// ListPayments is the use case for listing a client's payments.
type ListPayments struct {
	clients domain.ClientRepository
	ledger  domain.LedgerRepository
}

// NewListPayments creates a new ListPayments use case.
func NewListPayments(clients domain.ClientRepository, ledger domain.LedgerRepository) *ListPayments {
	return &ListPayments{clients: clients, ledger: ledger}
}

// Execute returns the client's payments.
func (uc *ListPayments) Execute(_ context.Context, in ListPaymentsInput) (*ListPaymentsOutput, error) {
	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.ledger.LoadPayments()
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	out := &ListPaymentsOutput{Client: client}
	for _, p := range payments {
		if p.ClientID == client.ID {
			out.Payments = append(out.Payments, p)
		}
	}
	return out, nil
}
