package cli

import (
	"fmt"
	"io"

	"github.com/runoshun/client-desk/internal/app"
	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase"
	"github.com/spf13/cobra"
)

// newNotificationsCommand creates the notifications command.
func newNotificationsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		ClientID string
		Format   string
		Unread   bool
		MarkRead bool
	}

	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "Show recorded notifications",
		Long: `Show notifications recorded by task changes, newest first.

Status changes and description edits are recorded while [notify] enabled
is true. Without --client, notifications of every client are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientID := ""
			if opts.ClientID != "" {
				list, err := c.ListClientsUseCase().Execute(cmd.Context(), usecase.ListClientsInput{})
				if err != nil {
					return err
				}
				client, err := domain.FindByID(list.Clients, opts.ClientID, func(cl *domain.Client) string { return cl.ID }, domain.ErrClientNotFound)
				if err != nil {
					return err
				}
				clientID = client.ID
			}

			out, err := c.ListNotificationsUseCase().Execute(cmd.Context(), usecase.ListNotificationsInput{
				ClientID:   clientID,
				UnreadOnly: opts.Unread,
				MarkRead:   opts.MarkRead,
			})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.Format, out.Notifications, func(w io.Writer) {
				if len(out.Notifications) == 0 {
					_, _ = fmt.Fprintln(w, "No notifications.")
					return
				}
				for _, n := range out.Notifications {
					mark := " "
					if !n.Read {
						mark = "*"
					}
					_, _ = fmt.Fprintf(w, "%s %s  %s\n", mark, n.Time.Local().Format("2006-01-02 15:04"), n.Message)
				}
				if out.Marked > 0 {
					_, _ = fmt.Fprintf(w, "\nMarked %d as read\n", out.Marked)
				}
			})
		},
	}

	addClientFlag(cmd, &opts.ClientID)
	addFormatFlag(cmd, &opts.Format)
	cmd.Flags().BoolVarP(&opts.Unread, "unread", "u", false, "Only unread notifications")
	cmd.Flags().BoolVar(&opts.MarkRead, "mark-read", false, "Mark the listed notifications as read")
	return cmd
}
