package shared

import (
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
)

// Notify records a notification for clientID. Delivery is fire-and-forget:
// a failure is logged and never returned.
func Notify(n domain.Notifier, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger, clientID, msg string) {
	if n == nil {
		return
	}
	err := n.Record(domain.Notification{
		ID:       ids.NewID(),
		ClientID: clientID,
		Message:  msg,
		Time:     clock.Now(),
	})
	if err != nil && logger != nil {
		logger.Warn(clientID, "notify", fmt.Sprintf("record notification: %v", err))
	}
}
