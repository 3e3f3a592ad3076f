package cli

import (
	"github.com/runoshun/client-desk/internal/app"
	"github.com/runoshun/client-desk/internal/usecase"
	"github.com/spf13/cobra"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump every collection to stdout",
		Long: `Dump the whole store (clients, tasks, payments, advances, feedback,
notifications and settings) to stdout as YAML or JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := newFormatter(format)
			if err != nil {
				return err
			}
			if f == nil {
				f = yamlFormatter{}
			}
			out, err := c.ExportUseCase().Execute(cmd.Context(), usecase.ExportInput{})
			if err != nil {
				return err
			}
			return f.Format(cmd.OutOrStdout(), out.Snapshot)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", formatYAML, "Output format: yaml or json")
	return cmd
}
