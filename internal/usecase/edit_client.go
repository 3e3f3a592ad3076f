package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
)

// EditClientInput contains the parameters for editing a client.
type EditClientInput struct {
	Patch    domain.ClientPatch // Fields to change
	ClientID string             // ID or prefix; empty = current client
}

// EditClientOutput contains the updated client.
type EditClientOutput struct {
	Client *domain.Client
}

// EditClient is the use case for editing a client.
type EditClient struct {
	clients domain.ClientRepository
	logger  domain.Logger
}

// NewEditClient creates a new EditClient use case.
func NewEditClient(clients domain.ClientRepository, logger domain.Logger) *EditClient {
	return &EditClient{clients: clients, logger: logger}
}

// Execute applies the patch and saves the client collection.
func (uc *EditClient) Execute(_ context.Context, in EditClientInput) (*EditClientOutput, error) {
	if in.Patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	clients, err := uc.clients.LoadClients()
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	settings, err := uc.clients.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	client, err := domain.ResolveActiveClient(clients, in.ClientID, settings.ActiveClientID)
	if err != nil {
		return nil, err
	}

	if err := in.Patch.Apply(client); err != nil {
		return nil, err
	}
	if err := uc.clients.SaveClients(clients); err != nil {
		return nil, fmt.Errorf("save clients: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(client.ID, "client", "updated")
	}

	return &EditClientOutput{Client: client}, nil
}
