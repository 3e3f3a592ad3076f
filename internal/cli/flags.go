package cli

import (
	"github.com/runoshun/client-desk/internal/domain"
	"github.com/spf13/cobra"
)

// addClientFlag registers --client on cmd.
func addClientFlag(cmd *cobra.Command, clientID *string) {
	cmd.Flags().StringVarP(clientID, "client", "c", "", "Client ID or prefix (default: current client)")
}

// dateFlag returns the parsed date when name was set on cmd, else nil.
func dateFlag(cmd *cobra.Command, name, value string) (*domain.Date, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// priorityFlag returns the parsed priority when name was set on cmd, else nil.
func priorityFlag(cmd *cobra.Command, name, value string) (*domain.Priority, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	p, err := domain.ParsePriority(value)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
