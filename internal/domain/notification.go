package domain

import "time"

// Notification is a message shown to the admin or the client about a change.
// Fields are ordered to minimize memory padding.
type Notification struct {
	Time     time.Time `json:"timestamp" yaml:"timestamp"`
	ID       string    `json:"id" yaml:"id"`
	ClientID string    `json:"clientId" yaml:"clientId"`
	Message  string    `json:"message" yaml:"message"`
	Read     bool      `json:"read" yaml:"read"`
}
