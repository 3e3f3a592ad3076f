package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// UseClientInput contains the parameters for selecting a client.
type UseClientInput struct {
	ClientID string // ID or prefix (required)
}

// UseClientOutput contains the newly selected client.
type UseClientOutput struct {
	Client *domain.Client
}

// UseClient is the use case for changing the current client.
type UseClient struct {
	clients domain.ClientRepository
}

// NewUseClient creates a new UseClient use case.
func NewUseClient(clients domain.ClientRepository) *UseClient {
	return &UseClient{clients: clients}
}

// Execute persists the selection.
func (uc *UseClient) Execute(_ context.Context, in UseClientInput) (*UseClientOutput, error) {
	if in.ClientID == "" {
		return nil, domain.ErrClientNotFound
	}
	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}
	if err := uc.clients.SaveSettings(domain.Settings{ActiveClientID: client.ID}); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return &UseClientOutput{Client: client}, nil
}
