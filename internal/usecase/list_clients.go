package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
)

// ListClientsInput contains the parameters for listing clients.
type ListClientsInput struct{}

// ListClientsOutput contains the registered clients.
type ListClientsOutput struct {
	ActiveID string // Client selected when --client is omitted ("" if none)
	Clients  []*domain.Client
}

// ListClients is the use case for listing clients.
type ListClients struct {
	clients domain.ClientRepository
}

// NewListClients creates a new ListClients use case.
func NewListClients(clients domain.ClientRepository) *ListClients {
	return &ListClients{clients: clients}
}

// Execute returns every client and the effective selection.
func (uc *ListClients) Execute(_ context.Context, _ ListClientsInput) (*ListClientsOutput, error) {
	clients, err := uc.clients.LoadClients()
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	settings, err := uc.clients.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	out := &ListClientsOutput{Clients: clients}
	if active, err := domain.ResolveActiveClient(clients, "", settings.ActiveClientID); err == nil {
		out.ActiveID = active.ID
	}
	return out, nil
}
