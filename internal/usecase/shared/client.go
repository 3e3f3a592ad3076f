package shared

import (
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
)

// ResolveClient returns the client an operation applies to: requested
// (ID or prefix) when set, otherwise the persisted selection.
func ResolveClient(repo domain.ClientRepository, requested string) (*domain.Client, error) {
	clients, err := repo.LoadClients()
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	settings, err := repo.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return domain.ResolveActiveClient(clients, requested, settings.ActiveClientID)
}
