package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// AddAdvanceInput contains the parameters for recording an advance.
// Fields are ordered to minimize memory padding.
type AddAdvanceInput struct {
	Date     *domain.Date       // Date (nil = today)
	ClientID string             // ID or prefix; empty = current client
	Type     domain.AdvanceType // Received or Repaid (required)
	Note     string
	Amount   float64 // Must be positive
}

// AddAdvanceOutput contains the recorded advance.
type AddAdvanceOutput struct {
	Advance *domain.Advance
}

// AddAdvance is the use case for recording an advance.
type AddAdvance struct {
	clients domain.ClientRepository
	ledger  domain.LedgerRepository
	ids     domain.IDGenerator
	clock   domain.Clock
	logger  domain.Logger
}

// NewAddAdvance creates a new AddAdvance use case.
func NewAddAdvance(clients domain.ClientRepository, ledger domain.LedgerRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *AddAdvance {
	return &AddAdvance{clients: clients, ledger: ledger, ids: ids, clock: clock, logger: logger}
}

// Execute validates and appends the advance.
func (uc *AddAdvance) Execute(_ context.Context, in AddAdvanceInput) (*AddAdvanceOutput, error) {
	if err := domain.ValidateAmount(in.Amount); err != nil {
		return nil, err
	}
	if _, err := domain.ParseAdvanceType(string(in.Type)); err != nil {
		return nil, err
	}

	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}
	advances, err := uc.ledger.LoadAdvances()
	if err != nil {
		return nil, fmt.Errorf("load advances: %w", err)
	}

	advance := &domain.Advance{
		ID:       uc.ids.NewID(),
		ClientID: client.ID,
		Date:     dateOrToday(in.Date, uc.clock),
		Amount:   in.Amount,
		Type:     in.Type,
		Note:     in.Note,
	}
	if err := uc.ledger.SaveAdvances(append(advances, advance)); err != nil {
		return nil, fmt.Errorf("save advances: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(client.ID, "advance", fmt.Sprintf("recorded %.2f (%s)", advance.Amount, advance.Type))
	}
	return &AddAdvanceOutput{Advance: advance}, nil
}

// ListAdvancesInput contains the parameters for listing advances.
type ListAdvancesInput struct {
	ClientID string // ID or prefix; empty = current client
}

// ListAdvancesOutput contains the client's advances and their balance.
type ListAdvancesOutput struct {
	Client   *domain.Client
	Advances []*domain.Advance
	Balance  float64 // Received minus repaid
}

// ListAdvances is the use case for listing a client's advances.
type ListAdvances struct {
	clients domain.ClientRepository
	ledger  domain.LedgerRepository
}

// NewListAdvances creates a new ListAdvances use case.
func NewListAdvances(clients domain.ClientRepository, ledger domain.LedgerRepository) *ListAdvances {
	return &ListAdvances{clients: clients, ledger: ledger}
}

// Execute returns the client's advances.
func (uc *ListAdvances) Execute(_ context.Context, in ListAdvancesInput) (*ListAdvancesOutput, error) {
	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}
	advances, err := uc.ledger.LoadAdvances()
	if err != nil {
		return nil, fmt.Errorf("load advances: %w", err)
	}
	out := &ListAdvancesOutput{Client: client}
	for _, a := range advances {
		if a.ClientID != client.ID {
			continue
		}
		out.Advances = append(out.Advances, a)
		if a.Type == domain.AdvanceReceived {
			out.Balance += a.Amount
		} else {
			out.Balance -= a.Amount
		}
	}
	return out, nil
}

// DeleteAdvanceInput contains the parameters for deleting an advance.
type DeleteAdvanceInput struct {
	AdvanceID string // ID or prefix (required)
}

// DeleteAdvanceOutput contains the deleted advance.
type DeleteAdvanceOutput struct {
	Advance *domain.Advance
}

// DeleteAdvance is the use case for deleting an advance.
type DeleteAdvance struct {
	ledger domain.LedgerRepository
	logger domain.Logger
}

// NewDeleteAdvance creates a new DeleteAdvance use case.
func NewDeleteAdvance(ledger domain.LedgerRepository, logger domain.Logger) *DeleteAdvance {
	return &DeleteAdvance{ledger: ledger, logger: logger}
}

// Execute removes the advance.
func (uc *DeleteAdvance) Execute(_ context.Context, in DeleteAdvanceInput) (*DeleteAdvanceOutput, error) {
	advances, err := uc.ledger.LoadAdvances()
	if err != nil {
		return nil, fmt.Errorf("load advances: %w", err)
	}
	advance, err := domain.FindByID(advances, in.AdvanceID, func(a *domain.Advance) string { return a.ID }, domain.ErrAdvanceNotFound)
	if err != nil {
		return nil, err
	}

	advances = slices.DeleteFunc(advances, func(a *domain.Advance) bool { return a.ID == advance.ID })
	if err := uc.ledger.SaveAdvances(advances); err != nil {
		return nil, fmt.Errorf("save advances: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(advance.ClientID, "advance", fmt.Sprintf("deleted %s", domain.ShortID(advance.ID)))
	}
	return &DeleteAdvanceOutput{Advance: advance}, nil
}
