package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/client-desk/internal/app"
	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase"
	"github.com/spf13/cobra"
)

// newDepCommand creates the dep command group.
func newDepCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dep",
		Short: "Manage task dependencies",
		Long: `Manage dependencies between tasks of the same client.

A task is blocked while any task it depends on is not Completed.
Dependencies that would form a cycle are refused.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(
		newDepAddCommand(c),
		newDepRmCommand(c),
		newDepCheckCommand(c),
	)
	return cmd
}

func newDepAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <task> <depends-on>",
		Short: "Make a task depend on another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddDependencyUseCase().Execute(cmd.Context(), usecase.AddDependencyInput{
				TaskID:       args[0],
				DependencyID: args[1],
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !out.Added {
				_, _ = fmt.Fprintf(w, "Task %s already depends on %s\n", domain.ShortID(out.Task.ID), domain.ShortID(out.Dependency.ID))
				return nil
			}
			_, _ = fmt.Fprintf(w, "Task %s now depends on %s\n", domain.ShortID(out.Task.ID), domain.ShortID(out.Dependency.ID))
			return nil
		},
	}
}

func newDepRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task> <depends-on>",
		Short: "Remove a dependency",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RemoveDependencyUseCase().Execute(cmd.Context(), usecase.RemoveDependencyInput{
				TaskID:       args[0],
				DependencyID: args[1],
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !out.Removed {
				_, _ = fmt.Fprintf(w, "Task %s does not depend on %s\n", domain.ShortID(out.Task.ID), args[1])
				return nil
			}
			_, _ = fmt.Fprintf(w, "Removed dependency %s -> %s\n", domain.ShortID(out.Task.ID), domain.ShortID(out.DependencyID))
			return nil
		},
	}
}

func newDepCheckCommand(c *app.Container) *cobra.Command {
	var clientID, format string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report cycles and dangling dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.CheckDependenciesUseCase().Execute(cmd.Context(), usecase.CheckDependenciesInput{ClientID: clientID})
			if err != nil {
				return err
			}
			data := map[string]any{
				"cycle":    out.Cycle,
				"dangling": out.Dangling,
				"ok":       out.OK(),
			}
			return render(cmd.OutOrStdout(), format, data, func(w io.Writer) {
				printDependencyCheck(w, out)
			})
		},
	}
	addClientFlag(cmd, &clientID)
	addFormatFlag(cmd, &format)
	return cmd
}

func printDependencyCheck(w io.Writer, out *usecase.CheckDependenciesOutput) {
	if out.OK() {
		_, _ = fmt.Fprintf(w, "Dependencies of %s are consistent.\n", out.Client.Name)
		return
	}
	if len(out.Cycle) > 0 {
		short := make([]string, len(out.Cycle))
		for i, id := range out.Cycle {
			short[i] = domain.ShortID(id)
		}
		_, _ = fmt.Fprintf(w, "Cycle: %s\n", strings.Join(short, " -> "))
	}
	for _, d := range out.Dangling {
		reason := "missing"
		if d.CrossClient {
			reason = "other client"
		}
		_, _ = fmt.Fprintf(w, "Dangling: %s -> %s (%s)\n", domain.ShortID(d.TaskID), domain.ShortID(d.DependencyID), reason)
	}
}
