package domain

import (
	"strings"
	"time"
)

// Client is a customer whose tasks and ledger entries are tracked.
// Fields are ordered to minimize memory padding.
type Client struct {
	Created time.Time `json:"created" yaml:"created"`
	ID      string    `json:"id" yaml:"id"`
	Name    string    `json:"name" yaml:"name"`
	Note    string    `json:"note,omitempty" yaml:"note,omitempty"`
	Email   string    `json:"email,omitempty" yaml:"email,omitempty"`
}

// ClientPatch lists the mutable fields of a client. Nil fields are left unchanged.
type ClientPatch struct {
	Name  *string
	Note  *string
	Email *string
}

// IsEmpty returns true if the patch changes nothing.
func (p ClientPatch) IsEmpty() bool {
	return p.Name == nil && p.Note == nil && p.Email == nil
}

// Apply validates the patch and applies it to the client.
func (p ClientPatch) Apply(c *Client) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return ErrEmptyName
		}
		c.Name = name
	}
	if p.Note != nil {
		c.Note = *p.Note
	}
	if p.Email != nil {
		c.Email = strings.TrimSpace(*p.Email)
	}
	return nil
}

// Settings holds the persisted UI selection state.
type Settings struct {
	ActiveClientID string `json:"activeClientId,omitempty" yaml:"activeClientId,omitempty"`
}

// ResolveActiveClient picks the client commands operate on: the requested ID
// if given, else the persisted selection, else the first client.
// A persisted selection that no longer exists falls back to the first client.
func ResolveActiveClient(clients []*Client, requested, active string) (*Client, error) {
	if requested != "" {
		return FindByID(clients, requested, func(c *Client) string { return c.ID }, ErrClientNotFound)
	}
	for _, c := range clients {
		if c.ID == active {
			return c, nil
		}
	}
	if len(clients) == 0 {
		return nil, ErrNoClientSelected
	}
	return clients[0], nil
}
