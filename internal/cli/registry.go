package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/runoshun/client-desk/internal/app"
	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase"
	"github.com/spf13/cobra"
)

// newReviewCommand creates the review command group.
func newReviewCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "review",
		Aliases: []string{"reviews"},
		Short:   "Track Google and Trustpilot reviews",
		// No RunE: shows subcommand list when called without arguments
	}
	cmd.AddCommand(
		newReviewAddCommand(c),
		newReviewListCommand(c),
		newReviewStatusCommand(c),
		newReviewRmCommand(c),
	)
	return cmd
}

func newReviewAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		ClientID      string
		Date          string
		Kind          string
		Status        string
		Link          string
		Title         string
		Content       string
		Reviewer      string
		Location      string
		LiveLink      string
		Note          string
		GmailUsed     string
		InvoiceNumber string
		Stars         int
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a review",
		Long: `Register a review for the client.

New reviews start as Pending unless --status is given. Google reviews
default to 5 stars; Trustpilot reviews default to the US location.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := dateFlag(cmd, "date", opts.Date)
			if err != nil {
				return err
			}
			kind, err := domain.ParseReviewKind(opts.Kind)
			if err != nil {
				return err
			}
			out, err := c.AddReviewUseCase().Execute(cmd.Context(), usecase.AddReviewInput{
				ClientID:      opts.ClientID,
				Date:          date,
				Kind:          kind,
				Status:        domain.ReviewStatus(opts.Status),
				Link:          opts.Link,
				Title:         opts.Title,
				Content:       opts.Content,
				Reviewer:      opts.Reviewer,
				Location:      opts.Location,
				LiveLink:      opts.LiveLink,
				Note:          opts.Note,
				GmailUsed:     opts.GmailUsed,
				InvoiceNumber: opts.InvoiceNumber,
				Stars:         opts.Stars,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s review %s (%s)\n",
				out.Review.Kind, domain.ShortID(out.Review.ID), out.Review.Status)
			return nil
		},
	}

	addClientFlag(cmd, &opts.ClientID)
	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "", "google or trustpilot (required)")
	cmd.Flags().StringVarP(&opts.Content, "content", "m", "", "Review text (required)")
	cmd.Flags().IntVar(&opts.Stars, "stars", 0, "Stars 1-5")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Live, Drop, Invoice Approved or Pending")
	cmd.Flags().StringVar(&opts.Link, "link", "", "Company page (Google) or review page (Trustpilot)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Review title")
	cmd.Flags().StringVar(&opts.Reviewer, "reviewer", "", "Reviewer name")
	cmd.Flags().StringVar(&opts.Location, "location", "", "Reviewer location")
	cmd.Flags().StringVar(&opts.LiveLink, "live-link", "", "Link to the published review")
	cmd.Flags().StringVar(&opts.GmailUsed, "gmail", "", "Account the review was posted from")
	cmd.Flags().StringVar(&opts.InvoiceNumber, "invoice", "", "Invoice number")
	cmd.Flags().StringVar(&opts.Note, "note", "", "Note")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newReviewListCommand(c *app.Container) *cobra.Command {
	var clientID, kind, status, format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the client's reviews",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListReviewsUseCase().Execute(cmd.Context(), usecase.ListReviewsInput{
				ClientID: clientID,
				Kind:     domain.ReviewKind(kind),
				Status:   domain.ReviewStatus(status),
			})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, out.Reviews, func(w io.Writer) {
				printReviews(w, out.Reviews)
			})
		},
	}
	addClientFlag(cmd, &clientID)
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Filter by kind")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status")
	addFormatFlag(cmd, &format)
	return cmd
}

func printReviews(w io.Writer, reviews []*domain.Review) {
	if len(reviews) == 0 {
		_, _ = fmt.Fprintln(w, "No reviews.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()
	_, _ = fmt.Fprintln(tw, "ID\tDATE\tKIND\tSTARS\tSTATUS\tREVIEWER\tLIVE LINK")
	for _, r := range reviews {
		stars := "-"
		if r.Stars > 0 {
			stars = fmt.Sprintf("%d", r.Stars)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			domain.ShortID(r.ID), r.Date, r.Kind, stars, r.Status, dash(r.Reviewer), dash(r.LiveLink))
	}
}

func newReviewStatusCommand(c *app.Container) *cobra.Command {
	var liveLink string

	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a review's status",
		Long: `Change a review's status to Live, Drop, Invoice Approved or Pending.

The status may be given unquoted, e.g. 'desk review status 1a2b invoice approved'.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.SetReviewStatusUseCase().Execute(cmd.Context(), usecase.SetReviewStatusInput{
				ReviewID: args[0],
				Status:   domain.ReviewStatus(strings.Join(args[1:], " ")),
				LiveLink: liveLink,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Review %s: %s -> %s\n", domain.ShortID(out.Review.ID), out.Previous, out.Review.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&liveLink, "live-link", "", "Link to the published review")
	return cmd
}

func newReviewRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.DeleteReviewUseCase().Execute(cmd.Context(), usecase.DeleteReviewInput{ReviewID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted review %s\n", domain.ShortID(out.Review.ID))
			return nil
		},
	}
}

// newAddressCommand creates the address command group.
func newAddressCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "address",
		Aliases: []string{"addresses", "addr"},
		Short:   "Keep the client's address book",
		// No RunE: shows subcommand list when called without arguments
	}
	cmd.AddCommand(
		newAddressAddCommand(c),
		newAddressListCommand(c),
		newAddressRmCommand(c),
	)
	return cmd
}

func newAddressAddCommand(c *app.Container) *cobra.Command {
	var clientID, phone, invoice string

	cmd := &cobra.Command{
		Use:   "add <full address>",
		Short: "Record an address",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddAddressUseCase().Execute(cmd.Context(), usecase.AddAddressInput{
				ClientID:      clientID,
				FullAddress:   strings.Join(args, " "),
				Phone:         phone,
				InvoiceNumber: invoice,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded address %s\n", domain.ShortID(out.Address.ID))
			return nil
		},
	}
	addClientFlag(cmd, &clientID)
	cmd.Flags().StringVarP(&phone, "phone", "p", "", "Phone number")
	cmd.Flags().StringVar(&invoice, "invoice", "", "Invoice number")
	return cmd
}

func newAddressListCommand(c *app.Container) *cobra.Command {
	var clientID, format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the client's addresses",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListAddressesUseCase().Execute(cmd.Context(), usecase.ListAddressesInput{ClientID: clientID})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, out.Addresses, func(w io.Writer) {
				if len(out.Addresses) == 0 {
					_, _ = fmt.Fprintln(w, "No addresses.")
					return
				}
				tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
				defer func() { _ = tw.Flush() }()
				_, _ = fmt.Fprintln(tw, "ID\tADDRESS\tPHONE\tINVOICE")
				for _, a := range out.Addresses {
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", domain.ShortID(a.ID), a.FullAddress, dash(a.Phone), dash(a.InvoiceNumber))
				}
			})
		},
	}
	addClientFlag(cmd, &clientID)
	addFormatFlag(cmd, &format)
	return cmd
}

func newAddressRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.DeleteAddressUseCase().Execute(cmd.Context(), usecase.DeleteAddressInput{AddressID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted address %s\n", domain.ShortID(out.Address.ID))
			return nil
		},
	}
}
