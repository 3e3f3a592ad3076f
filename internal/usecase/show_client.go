package usecase

import (
	"context"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// ShowClientInput contains the parameters for showing a client.
type ShowClientInput struct {
	ClientID string // ID or prefix; empty = current client
}

// ShowClientOutput contains the client details.
type ShowClientOutput struct {
	Client *domain.Client
}

// ShowClient is the use case for showing a single client.
type ShowClient struct {
	clients domain.ClientRepository
}

// NewShowClient creates a new ShowClient use case.
func NewShowClient(clients domain.ClientRepository) *ShowClient {
	return &ShowClient{clients: clients}
}

// Execute resolves and returns the client.
func (uc *ShowClient) Execute(_ context.Context, in ShowClientInput) (*ShowClientOutput, error) {
	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}
	return &ShowClientOutput{Client: client}, nil
}
