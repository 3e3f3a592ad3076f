package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/client-desk/internal/domain"
)

// View renders the board.
func (m *Model) View() string {
	var b strings.Builder

	name := "(no client)"
	if m.client != nil {
		name = m.client.Name
	}
	b.WriteString(m.styles.Header.Render(name))
	b.WriteString(m.styles.HeaderMuted.Render(fmt.Sprintf("  %d tasks", len(m.tasks))))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.Muted.Render("No tasks."))
		b.WriteString("\n")
	}

	today := domain.NewDate(m.now())
	for i, v := range m.tasks {
		b.WriteString(m.renderRow(v.Task, v.Blocked, i == m.cursor, today))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.message != "":
		b.WriteString("\n")
		b.WriteString(m.styles.StatusMsg.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) renderRow(t *domain.Task, blocked, selected bool, today domain.Date) string {
	cursor := "  "
	title := m.styles.TaskNormal
	if selected {
		cursor = m.styles.Cursor.Render("> ")
		title = m.styles.TaskSelected
	}

	status := StatusStyle(t.Status).Render(fmt.Sprintf("%-11s", t.Status))
	priority := PriorityStyle(t.Priority).Render(fmt.Sprintf("%-6s", t.Priority))

	due := fmt.Sprintf("%-10s", t.DueDate.String())
	if t.IsOverdue(today) {
		due = m.styles.Overdue.Render(due)
	}

	marker := ""
	if blocked {
		marker = " " + m.styles.Blocked.Render("[blocked]")
	}

	return fmt.Sprintf("%s%s  %s  %s  %s  %s%s",
		cursor, m.styles.Muted.Render(domain.ShortID(t.ID)), status, priority, due, title.Render(t.Description), marker)
}

func (m *Model) now() time.Time {
	if m.container != nil && m.container.Clock != nil {
		return m.container.Clock.Now()
	}
	return time.Now()
}
