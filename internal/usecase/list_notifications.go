package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
)

// ListNotificationsInput contains the parameters for listing notifications.
type ListNotificationsInput struct {
	ClientID   string // Exact client ID; empty = every client
	UnreadOnly bool   // Only unread notifications
	MarkRead   bool   // Mark the listed notifications as read
}

// ListNotificationsOutput contains notifications, newest first.
type ListNotificationsOutput struct {
	Notifications []*domain.Notification
	Marked        int // Number of notifications newly marked read
}

// ListNotifications is the use case for reading notifications.
type ListNotifications struct {
	notifications domain.NotificationRepository
}

// NewListNotifications creates a new ListNotifications use case.
func NewListNotifications(notifications domain.NotificationRepository) *ListNotifications {
	return &ListNotifications{notifications: notifications}
}

// Execute filters notifications and optionally marks them read.
func (uc *ListNotifications) Execute(_ context.Context, in ListNotificationsInput) (*ListNotificationsOutput, error) {
	all, err := uc.notifications.LoadNotifications()
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}

	out := &ListNotificationsOutput{}
	for i := len(all) - 1; i >= 0; i-- {
		n := all[i]
		if in.ClientID != "" && n.ClientID != in.ClientID {
			continue
		}
		if in.UnreadOnly && n.Read {
			continue
		}
		out.Notifications = append(out.Notifications, n)
		if in.MarkRead && !n.Read {
			n.Read = true
			out.Marked++
		}
	}

	if out.Marked > 0 {
		if err := uc.notifications.SaveNotifications(all); err != nil {
			return nil, fmt.Errorf("save notifications: %w", err)
		}
	}
	return out, nil
}
