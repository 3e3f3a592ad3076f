// Package idgen provides ID generation for stored records.
package idgen

import (
	"github.com/google/uuid"
	"github.com/runoshun/client-desk/internal/domain"
)

// Ensure UUID implements domain.IDGenerator.
var _ domain.IDGenerator = UUID{}

// UUID generates random (version 4) UUID strings.
type UUID struct{}

// NewID returns a new random UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}
