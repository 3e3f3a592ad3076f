// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
)

// InitStoreInput contains the parameters for initializing the store.
type InitStoreInput struct{}

// InitStoreOutput contains the result of initializing the store.
type InitStoreOutput struct{}

// InitStore is the use case for creating an empty data store.
type InitStore struct {
	store domain.StoreInitializer
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(store domain.StoreInitializer) *InitStore {
	return &InitStore{store: store}
}

// Execute creates the store, failing if it already exists.
func (uc *InitStore) Execute(_ context.Context, _ InitStoreInput) (*InitStoreOutput, error) {
	if uc.store.IsInitialized() {
		return nil, domain.ErrAlreadyInitialized
	}
	if err := uc.store.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}
	return &InitStoreOutput{}, nil
}
