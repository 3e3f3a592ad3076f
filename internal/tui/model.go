// Package tui provides the interactive task board for desk.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/client-desk/internal/app"
	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase"
)

// Model is the bubbletea model for the task board.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	client    *domain.Client
	err       error

	// State
	tasks    []usecase.TaskView
	clientID string
	message  string

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model

	// Numeric state (smaller types last)
	cursor   int
	width    int
	height   int
	showHelp bool
}

// New creates a board for clientID (empty = current client).
func New(c *app.Container, clientID string) *Model {
	return &Model{
		container: c,
		clientID:  clientID,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
	}
}

// Init loads the tasks.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// SelectedTask returns the task under the cursor, or nil.
func (m *Model) SelectedTask() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor].Task
}

func (m *Model) loadTasks() tea.Cmd {
	clientID := m.clientID
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{ClientID: clientID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Client: out.Client, Tasks: out.Tasks}
	}
}

func (m *Model) updateStatus(taskID string, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.UpdateStatusUseCase().Execute(context.Background(), usecase.UpdateStatusInput{
			TaskID: taskID,
			Status: status,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStatusUpdated{Task: out.Task, Blockers: out.Blockers, Previous: out.Previous}
	}
}
