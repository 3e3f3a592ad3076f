package cli

import (
	"fmt"

	"github.com/runoshun/client-desk/internal/app"
	"github.com/runoshun/client-desk/internal/usecase"
	"github.com/spf13/cobra"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the data directory",
		Long: `Initialize the desk data directory.

This command creates the data directory with an empty store (desk.json).
Logs are written to logs/ inside the same directory.

Error conditions:
- Already initialized: "desk already initialized"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitStoreUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.InitStoreInput{}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized desk in %s\n", c.Config.DataDir)
			return nil
		},
	}
}
