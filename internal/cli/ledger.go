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

// newPayCommand creates the pay command group.
func newPayCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pay",
		Aliases: []string{"payment", "payments"},
		Short:   "Track payments",
		// No RunE: shows subcommand list when called without arguments
	}
	cmd.AddCommand(
		newPayAddCommand(c),
		newPayListCommand(c),
		newPayStatusCommand(c),
		newPayRmCommand(c),
	)
	return cmd
}

func newPayAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		ClientID string
		Date     string
		Status   string
		Note     string
		Amount   float64
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := dateFlag(cmd, "date", opts.Date)
			if err != nil {
				return err
			}
			status, err := domain.ParsePaymentStatus(opts.Status)
			if err != nil {
				return err
			}
			out, err := c.AddPaymentUseCase().Execute(cmd.Context(), usecase.AddPaymentInput{
				ClientID: opts.ClientID,
				Date:     date,
				Amount:   opts.Amount,
				Status:   status,
				Note:     opts.Note,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded payment %s: %.2f (%s)\n",
				domain.ShortID(out.Payment.ID), out.Payment.Amount, out.Payment.Status)
			return nil
		},
	}

	addClientFlag(cmd, &opts.ClientID)
	cmd.Flags().Float64VarP(&opts.Amount, "amount", "a", 0, "Amount (required, > 0)")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", string(domain.PaymentPending), "Paid, Unpaid or Pending")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&opts.Note, "note", "", "Note")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newPayListCommand(c *app.Container) *cobra.Command {
	var clientID, format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the client's payments",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListPaymentsUseCase().Execute(cmd.Context(), usecase.ListPaymentsInput{ClientID: clientID})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, out.Payments, func(w io.Writer) {
				if len(out.Payments) == 0 {
					_, _ = fmt.Fprintln(w, "No payments.")
					return
				}
				tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
				defer func() { _ = tw.Flush() }()
				_, _ = fmt.Fprintln(tw, "ID\tDATE\tAMOUNT\tSTATUS\tNOTE")
				for _, p := range out.Payments {
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\n", domain.ShortID(p.ID), p.Date, p.Amount, p.Status, dash(p.Note))
				}
			})
		},
	}
	addClientFlag(cmd, &clientID)
	addFormatFlag(cmd, &format)
	return cmd
}

func newPayStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a payment's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParsePaymentStatus(args[1])
			if err != nil {
				return err
			}
			out, err := c.SetPaymentStatusUseCase().Execute(cmd.Context(), usecase.SetPaymentStatusInput{
				PaymentID: args[0],
				Status:    status,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Payment %s: %s -> %s\n", domain.ShortID(out.Payment.ID), out.Previous, out.Payment.Status)
			return nil
		},
	}
}

func newPayRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.DeletePaymentUseCase().Execute(cmd.Context(), usecase.DeletePaymentInput{PaymentID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted payment %s\n", domain.ShortID(out.Payment.ID))
			return nil
		},
	}
}

// newAdvanceCommand creates the advance command group.
func newAdvanceCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "advance",
		Aliases: []string{"advances"},
		Short:   "Track advances received and repaid",
		// No RunE: shows subcommand list when called without arguments
	}
	cmd.AddCommand(
		newAdvanceAddCommand(c),
		newAdvanceListCommand(c),
		newAdvanceRmCommand(c),
	)
	return cmd
}

func newAdvanceAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		ClientID string
		Date     string
		Type     string
		Note     string
		Amount   float64
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an advance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := dateFlag(cmd, "date", opts.Date)
			if err != nil {
				return err
			}
			typ, err := domain.ParseAdvanceType(opts.Type)
			if err != nil {
				return err
			}
			out, err := c.AddAdvanceUseCase().Execute(cmd.Context(), usecase.AddAdvanceInput{
				ClientID: opts.ClientID,
				Date:     date,
				Amount:   opts.Amount,
				Type:     typ,
				Note:     opts.Note,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded advance %s: %.2f (%s)\n",
				domain.ShortID(out.Advance.ID), out.Advance.Amount, out.Advance.Type)
			return nil
		},
	}

	addClientFlag(cmd, &opts.ClientID)
	cmd.Flags().Float64VarP(&opts.Amount, "amount", "a", 0, "Amount (required, > 0)")
	cmd.Flags().StringVarP(&opts.Type, "type", "t", string(domain.AdvanceReceived), "Received or Repaid")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&opts.Note, "note", "", "Note")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newAdvanceListCommand(c *app.Container) *cobra.Command {
	var clientID, format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the client's advances",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListAdvancesUseCase().Execute(cmd.Context(), usecase.ListAdvancesInput{ClientID: clientID})
			if err != nil {
				return err
			}
			data := map[string]any{"advances": out.Advances, "balance": out.Balance}
			return render(cmd.OutOrStdout(), format, data, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
				_, _ = fmt.Fprintln(tw, "ID\tDATE\tAMOUNT\tTYPE\tNOTE")
				for _, a := range out.Advances {
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\n", domain.ShortID(a.ID), a.Date, a.Amount, a.Type, dash(a.Note))
				}
				_ = tw.Flush()
				_, _ = fmt.Fprintf(w, "\nBalance: %.2f\n", out.Balance)
			})
		},
	}
	addClientFlag(cmd, &clientID)
	addFormatFlag(cmd, &format)
	return cmd
}

func newAdvanceRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an advance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.DeleteAdvanceUseCase().Execute(cmd.Context(), usecase.DeleteAdvanceInput{AdvanceID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted advance %s\n", domain.ShortID(out.Advance.ID))
			return nil
		},
	}
}

// newFeedbackCommand creates the feedback command group.
func newFeedbackCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record client feedback",
		// No RunE: shows subcommand list when called without arguments
	}
	cmd.AddCommand(
		newFeedbackAddCommand(c),
		newFeedbackListCommand(c),
	)
	return cmd
}

func newFeedbackAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		ClientID string
		Date     string
		Comment  string
		Rating   int
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a rating from 1 to 5",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := dateFlag(cmd, "date", opts.Date)
			if err != nil {
				return err
			}
			out, err := c.AddFeedbackUseCase().Execute(cmd.Context(), usecase.AddFeedbackInput{
				ClientID: opts.ClientID,
				Date:     date,
				Rating:   opts.Rating,
				Comment:  opts.Comment,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded feedback %s (%d/5)\n", domain.ShortID(out.Feedback.ID), out.Feedback.Rating)
			return nil
		},
	}

	addClientFlag(cmd, &opts.ClientID)
	cmd.Flags().IntVarP(&opts.Rating, "rating", "r", 0, "Rating 1-5 (required)")
	cmd.Flags().StringVarP(&opts.Comment, "comment", "m", "", "Comment")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}

func newFeedbackListCommand(c *app.Container) *cobra.Command {
	var clientID, format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the client's feedback",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListFeedbackUseCase().Execute(cmd.Context(), usecase.ListFeedbackInput{ClientID: clientID})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, out.Feedback, func(w io.Writer) {
				if len(out.Feedback) == 0 {
					_, _ = fmt.Fprintln(w, "No feedback.")
					return
				}
				tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
				defer func() { _ = tw.Flush() }()
				_, _ = fmt.Fprintln(tw, "DATE\tRATING\tCOMMENT")
				for _, f := range out.Feedback {
					_, _ = fmt.Fprintf(tw, "%s\t%d/5\t%s\n", f.Date, f.Rating, dash(f.Comment))
				}
			})
		},
	}
	addClientFlag(cmd, &clientID)
	addFormatFlag(cmd, &format)
	return cmd
}
