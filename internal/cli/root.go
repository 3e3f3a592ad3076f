// Package cli provides the command-line interface for desk.
package cli

import (
	"fmt"

	"github.com/runoshun/client-desk/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupClient   = "client"
	groupWork     = "work"
	groupLedger   = "ledger"
	groupRegistry = "registry"
)

// DataDirFlag is the persistent flag selecting the data directory.
// main reads it before the container exists; cobra only needs to accept it.
const DataDirFlag = "data-dir"

// NewRootCommand creates the root command for desk.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "desk",
		Short: "Freelancer client desk",
		Long: `desk tracks clients, their tasks and the dependencies between them,
payments, advances, feedback, reviews and addresses, all in a local
JSON store.

Most commands act on the current client (see 'desk client use').
Pass --client to act on another one.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	root.PersistentFlags().String(DataDirFlag, "", "Data directory (default $DESK_DIR or ~/.local/share/desk)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupClient, Title: "Client Management:"},
		&cobra.Group{ID: groupWork, Title: "Task Management:"},
		&cobra.Group{ID: groupLedger, Title: "Ledger:"},
		&cobra.Group{ID: groupRegistry, Title: "Registries:"},
	)

	// Setup commands
	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupSetup

	// Client commands
	clientCmd := newClientCommand(c)
	clientCmd.GroupID = groupClient

	summaryCmd := newSummaryCommand(c)
	summaryCmd.GroupID = groupClient

	notificationsCmd := newNotificationsCommand(c)
	notificationsCmd.GroupID = groupClient

	// Task commands
	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupWork

	depCmd := newDepCommand(c)
	depCmd.GroupID = groupWork

	boardCmd := newBoardCommand(c)
	boardCmd.GroupID = groupWork

	// Ledger commands
	payCmd := newPayCommand(c)
	payCmd.GroupID = groupLedger

	advanceCmd := newAdvanceCommand(c)
	advanceCmd.GroupID = groupLedger

	feedbackCmd := newFeedbackCommand(c)
	feedbackCmd.GroupID = groupLedger

	// Registry commands
	reviewCmd := newReviewCommand(c)
	reviewCmd.GroupID = groupRegistry

	addressCmd := newAddressCommand(c)
	addressCmd.GroupID = groupRegistry

	root.AddCommand(
		initCmd,
		configCmd,
		exportCmd,
		clientCmd,
		summaryCmd,
		notificationsCmd,
		taskCmd,
		depCmd,
		boardCmd,
		payCmd,
		advanceCmd,
		feedbackCmd,
		reviewCmd,
		addressCmd,
	)

	return root
}
