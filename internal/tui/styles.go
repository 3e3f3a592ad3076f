package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/client-desk/internal/domain"
)

// Colors defines the color palette for the board and CLI output.
var Colors = struct {
	// Base colors
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Status colors
	Pending    lipgloss.Color
	InProgress lipgloss.Color
	Completed  lipgloss.Color
	OnHold     lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Pending:    lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Completed:  lipgloss.Color("#00B894"), // Green
	OnHold:     lipgloss.Color("#636E72"), // Gray
}

// Styles contains the lipgloss styles used by the board.
type Styles struct {
	Header       lipgloss.Style
	HeaderMuted  lipgloss.Style
	TaskNormal   lipgloss.Style
	TaskSelected lipgloss.Style
	Cursor       lipgloss.Style
	Blocked      lipgloss.Style
	Overdue      lipgloss.Style
	Muted        lipgloss.Style
	StatusMsg    lipgloss.Style
	ErrorMsg     lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the default board styles.
func DefaultStyles() Styles {
	return Styles{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		HeaderMuted:  lipgloss.NewStyle().Foreground(Colors.Muted),
		TaskNormal:   lipgloss.NewStyle().Foreground(Colors.TitleNormal),
		TaskSelected: lipgloss.NewStyle().Bold(true).Foreground(Colors.TitleSelected),
		Cursor:       lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true),
		Blocked:      lipgloss.NewStyle().Foreground(Colors.Error),
		Overdue:      lipgloss.NewStyle().Foreground(Colors.Warning),
		Muted:        lipgloss.NewStyle().Foreground(Colors.Muted),
		StatusMsg:    lipgloss.NewStyle().Foreground(Colors.Success),
		ErrorMsg:     lipgloss.NewStyle().Foreground(Colors.Error),
		Help:         lipgloss.NewStyle().MarginTop(1),
	}
}

// StatusStyle returns the style for a task status badge.
func StatusStyle(s domain.Status) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch s {
	case domain.StatusPending:
		return base.Foreground(Colors.Pending)
	case domain.StatusInProgress:
		return base.Foreground(Colors.InProgress)
	case domain.StatusCompleted:
		return base.Foreground(Colors.Completed)
	case domain.StatusOnHold:
		return base.Foreground(Colors.OnHold)
	default:
		return base
	}
}

// PriorityStyle returns the style for a task priority.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch p {
	case domain.PriorityHigh:
		return base.Foreground(Colors.Error).Bold(true)
	case domain.PriorityLow:
		return base.Foreground(Colors.Muted)
	default:
		return base
	}
}

// HealthStyle returns the style for a client health label.
func HealthStyle(h domain.Health) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch h {
	case domain.HealthGood:
		return base.Foreground(Colors.Success)
	case domain.HealthAttention:
		return base.Foreground(Colors.Warning)
	case domain.HealthAtRisk:
		return base.Foreground(Colors.Error)
	default:
		return base
	}
}
