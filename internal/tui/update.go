package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/client-desk/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgTasksLoaded:
		m.client = msg.Client
		m.tasks = msg.Tasks
		m.err = nil
		if m.cursor >= len(m.tasks) {
			m.cursor = max(len(m.tasks)-1, 0)
		}
		return m, nil

	case MsgStatusUpdated:
		m.err = nil
		m.message = fmt.Sprintf("%s: %s -> %s", domain.ShortID(msg.Task.ID), msg.Previous, msg.Task.Status)
		if len(msg.Blockers) > 0 && msg.Task.Status.IsActive() {
			m.message += fmt.Sprintf(" (blocked by %d)", len(msg.Blockers))
		}
		return m, m.loadTasks()

	case MsgError:
		m.err = msg.Err
		m.message = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleStatus):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		return m, m.updateStatus(task.ID, task.Status.Next())

	case key.Matches(msg, m.keys.Refresh):
		m.message = ""
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	return m, nil
}
