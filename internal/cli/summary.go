package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/runoshun/client-desk/internal/app"
	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/tui"
	"github.com/runoshun/client-desk/internal/usecase"
	"github.com/spf13/cobra"
)

// newSummaryCommand creates the summary command.
func newSummaryCommand(c *app.Container) *cobra.Command {
	var clientID, format string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the client's dashboard figures",
		Long: `Show the dashboard figures for a client.

Health is "good" with no overdue tasks, nothing outstanding and no advance
left to repay. It is "at-risk" when tasks are overdue and money is
outstanding, and "attention" otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.SummaryUseCase().Execute(cmd.Context(), usecase.SummaryInput{ClientID: clientID})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, out.Summary, func(w io.Writer) {
				printSummary(w, out.Summary)
			})
		},
	}
	addClientFlag(cmd, &clientID)
	addFormatFlag(cmd, &format)
	return cmd
}

func printSummary(w io.Writer, s domain.Summary) {
	_, _ = fmt.Fprintf(w, "%s  %s\n\n", s.ClientName, tui.HealthStyle(s.Health).Render(string(s.Health)))

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()
	_, _ = fmt.Fprintf(tw, "Total paid:\t%.2f\n", s.TotalPaid)
	_, _ = fmt.Fprintf(tw, "Outstanding:\t%.2f\n", s.Outstanding)
	_, _ = fmt.Fprintf(tw, "Advance balance:\t%.2f\n", s.AdvanceBalance)
	_, _ = fmt.Fprintf(tw, "Tasks:\t%d (%d open, %d blocked, %d overdue)\n", s.TotalTasks, s.OpenTasks, s.BlockedTasks, s.OverdueTasks)
	_, _ = fmt.Fprintf(tw, "Reviews:\t%d (%d live)\n", s.TotalReviews, s.LiveReviews)
	if s.Satisfaction != nil {
		_, _ = fmt.Fprintf(tw, "Satisfaction:\t%.1f/5 (%d ratings)\n", *s.Satisfaction, s.FeedbackCount)
	} else {
		_, _ = fmt.Fprintln(tw, "Satisfaction:\t-")
	}
}
