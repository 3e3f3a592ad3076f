package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/runoshun/client-desk/internal/app"
	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase"
	"github.com/spf13/cobra"
)

// newClientCommand creates the client command group.
func newClientCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "client",
		Aliases: []string{"clients"},
		Short:   "Manage clients",
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(
		newClientAddCommand(c),
		newClientListCommand(c),
		newClientShowCommand(c),
		newClientEditCommand(c),
		newClientRmCommand(c),
		newClientUseCommand(c),
	)
	return cmd
}

func newClientAddCommand(c *app.Container) *cobra.Command {
	var opts usecase.NewClientInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a client and make it current",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.NewClientUseCase().Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added client %s (%s)\n", out.Client.Name, domain.ShortID(out.Client.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Client name (required)")
	cmd.Flags().StringVar(&opts.Note, "note", "", "Free-form note")
	cmd.Flags().StringVar(&opts.Email, "email", "", "Contact email")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newClientListCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List clients",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListClientsUseCase().Execute(cmd.Context(), usecase.ListClientsInput{})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, out.Clients, func(w io.Writer) {
				printClientList(w, out.Clients, out.ActiveID)
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

// printClientList prints clients in TSV format, marking the current one.
func printClientList(w io.Writer, clients []*domain.Client, activeID string) {
	if len(clients) == 0 {
		_, _ = fmt.Fprintln(w, "No clients. Add one with 'desk client add --name <name>'.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, " \tID\tNAME\tEMAIL")
	for _, cl := range clients {
		marker := " "
		if cl.ID == activeID {
			marker = "*"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", marker, domain.ShortID(cl.ID), cl.Name, dash(cl.Email))
	}
}

func newClientShowCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a client (default: current)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in usecase.ShowClientInput
			if len(args) == 1 {
				in.ClientID = args[0]
			}
			out, err := c.ShowClientUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, out.Client, func(w io.Writer) {
				cl := out.Client
				_, _ = fmt.Fprintf(w, "ID:      %s\n", cl.ID)
				_, _ = fmt.Fprintf(w, "Name:    %s\n", cl.Name)
				_, _ = fmt.Fprintf(w, "Email:   %s\n", dash(cl.Email))
				_, _ = fmt.Fprintf(w, "Created: %s\n", cl.Created.Format("2006-01-02 15:04"))
				if cl.Note != "" {
					_, _ = fmt.Fprintf(w, "\n%s\n", cl.Note)
				}
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func newClientEditCommand(c *app.Container) *cobra.Command {
	var name, note, email string

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a client (default: current)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.EditClientInput{}
			if len(args) == 1 {
				in.ClientID = args[0]
			}
			if cmd.Flags().Changed("name") {
				in.Patch.Name = &name
			}
			if cmd.Flags().Changed("note") {
				in.Patch.Note = &note
			}
			if cmd.Flags().Changed("email") {
				in.Patch.Email = &email
			}

			out, err := c.EditClientUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated client %s\n", out.Client.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&note, "note", "", "New note")
	cmd.Flags().StringVar(&email, "email", "", "New email")
	return cmd
}

func newClientRmCommand(c *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a client",
		Long: `Delete a client.

A client that still has tasks, payments, advances or feedback is kept
unless --force is given, in which case those records are deleted too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.DeleteClientUseCase().Execute(cmd.Context(), usecase.DeleteClientInput{
				ClientID: args[0],
				Force:    force,
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Deleted client %s\n", out.Client.Name)
			if force {
				_, _ = fmt.Fprintf(w, "Removed %d tasks, %d payments, %d advances, %d feedback, %d reviews, %d addresses\n",
					out.RemovedTasks, out.RemovedPayments, out.RemovedAdvances, out.RemovedFeedback, out.RemovedReviews, out.RemovedAddresses)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Also delete the client's records")
	return cmd
}

func newClientUseCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Make a client current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.UseClientUseCase().Execute(cmd.Context(), usecase.UseClientInput{ClientID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Now using client %s\n", out.Client.Name)
			return nil
		},
	}
}

// dash returns "-" for empty strings.
func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
