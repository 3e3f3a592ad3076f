package tui

import (
	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase"
)

// Msg is the sealed interface for board messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the client's tasks are loaded.
type MsgTasksLoaded struct {
	Client *domain.Client
	Tasks  []usecase.TaskView
}

func (MsgTasksLoaded) sealed() {}

// MsgStatusUpdated is sent when a task status was changed.
type MsgStatusUpdated struct {
	Task     *domain.Task
	Blockers []*domain.Task
	Previous domain.Status
}

func (MsgStatusUpdated) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
