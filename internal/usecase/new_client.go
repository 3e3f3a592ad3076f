package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/client-desk/internal/domain"
)

// NewClientInput contains the parameters for registering a client.
type NewClientInput struct {
	Name  string // Display name (required)
	Note  string // Free-form note (optional)
	Email string // Contact email (optional)
}

// NewClientOutput contains the result of registering a client.
type NewClientOutput struct {
	Client *domain.Client
}

// NewClient is the use case for registering a client.
// The new client becomes the current selection.
type NewClient struct {
	clients domain.ClientRepository
	ids     domain.IDGenerator
	clock   domain.Clock
	logger  domain.Logger
}

// NewNewClient creates a new NewClient use case.
func NewNewClient(clients domain.ClientRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *NewClient {
	return &NewClient{
		clients: clients,
		ids:     ids,
		clock:   clock,
		logger:  logger,
	}
}

// Execute registers a client and selects it.
func (uc *NewClient) Execute(_ context.Context, in NewClientInput) (*NewClientOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	clients, err := uc.clients.LoadClients()
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}

	client := &domain.Client{
		ID:      uc.ids.NewID(),
		Name:    name,
		Note:    in.Note,
		Email:   strings.TrimSpace(in.Email),
		Created: uc.clock.Now(),
	}
	clients = append(clients, client)

	if err := uc.clients.SaveClients(clients); err != nil {
		return nil, fmt.Errorf("save clients: %w", err)
	}
	if err := uc.clients.SaveSettings(domain.Settings{ActiveClientID: client.ID}); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(client.ID, "client", fmt.Sprintf("created: %q", name))
	}

	return &NewClientOutput{Client: client}, nil
}
