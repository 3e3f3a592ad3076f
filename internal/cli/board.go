package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/client-desk/internal/app"
	"github.com/runoshun/client-desk/internal/tui"
	"github.com/spf13/cobra"
)

// launchBoardFunc is a function variable for launching the board, allowing it to be mocked in tests.
var launchBoardFunc = launchBoard

// newBoardCommand creates the board command for the interactive task board.
func newBoardCommand(c *app.Container) *cobra.Command {
	var clientID string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive task board",
		Long: `Open the interactive task board for a client.

Keys: j/k move, s moves the task to the next status, r refreshes,
? toggles help, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchBoardFunc(c, clientID)
		},
	}
	addClientFlag(cmd, &clientID)
	return cmd
}

func launchBoard(c *app.Container, clientID string) error {
	p := tea.NewProgram(tui.New(c, clientID), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
