package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/usecase/shared"
)

// AddAddressInput contains the parameters for recording an address.
type AddAddressInput struct {
	ClientID      string // ID or prefix; empty = current client
	FullAddress   string // Required
	Phone         string
	InvoiceNumber string
}

// AddAddressOutput contains the recorded address.
type AddAddressOutput struct {
	Address *domain.Address
}

// AddAddress is the use case for recording a client address.
type AddAddress struct {
	clients  domain.ClientRepository
	registry domain.RegistryRepository
	ids      domain.IDGenerator
	logger   domain.Logger
}

// NewAddAddress creates a new AddAddress use case.
func NewAddAddress(clients domain.ClientRepository, registry domain.RegistryRepository, ids domain.IDGenerator, logger domain.Logger) *AddAddress {
	return &AddAddress{clients: clients, registry: registry, ids: ids, logger: logger}
}

// Execute validates and appends the address.
func (uc *AddAddress) Execute(_ context.Context, in AddAddressInput) (*AddAddressOutput, error) {
	full := strings.TrimSpace(in.FullAddress)
	if full == "" {
		return nil, domain.ErrEmptyAddress
	}

	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}
	addresses, err := uc.registry.LoadAddresses()
	if err != nil {
		return nil, fmt.Errorf("load addresses: %w", err)
	}

	address := &domain.Address{
		ID:            uc.ids.NewID(),
		ClientID:      client.ID,
		FullAddress:   full,
		Phone:         strings.TrimSpace(in.Phone),
		InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
	}
	if err := uc.registry.SaveAddresses(append(addresses, address)); err != nil {
		return nil, fmt.Errorf("save addresses: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(client.ID, "address", fmt.Sprintf("recorded %s", domain.ShortID(address.ID)))
	}
	return &AddAddressOutput{Address: address}, nil
}

// ListAddressesInput contains the parameters for listing addresses.
type ListAddressesInput struct {
	ClientID string // ID or prefix; empty = current client
}

// ListAddressesOutput contains the client's addresses in stored order.
type ListAddressesOutput struct {
	Client    *domain.Client
	Addresses []*domain.Address
}

// ListAddresses is the use case for listing a client's addresses.
type ListAddresses struct {
	clients  domain.ClientRepository
	registry domain.RegistryRepository
}

// NewListAddresses creates a new ListAddresses use case.
func NewListAddresses(clients domain.ClientRepository, registry domain.RegistryRepository) *ListAddresses {
	return &ListAddresses{clients: clients, registry: registry}
}

// Execute returns the client's addresses.
func (uc *ListAddresses) Execute(_ context.Context, in ListAddressesInput) (*ListAddressesOutput, error) {
	client, err := shared.ResolveClient(uc.clients, in.ClientID)
	if err != nil {
		return nil, err
	}
	addresses, err := uc.registry.LoadAddresses()
	if err != nil {
		return nil, fmt.Errorf("load addresses: %w", err)
	}
	out := &ListAddressesOutput{Client: client}
	for _, a := range addresses {
		if a.ClientID == client.ID {
			out.Addresses = append(out.Addresses, a)
		}
	}
	return out, nil
}

// DeleteAddressInput contains the parameters for deleting an address.
type DeleteAddressInput struct {
	AddressID string // ID or prefix (required)
}

// DeleteAddressOutput contains the deleted address.
type DeleteAddressOutput struct {
	Address *domain.Address
}

// DeleteAddress is the use case for deleting an address.
type DeleteAddress struct {
	registry domain.RegistryRepository
	logger   domain.Logger
}

// NewDeleteAddress creates a new DeleteAddress use case.
func NewDeleteAddress(registry domain.RegistryRepository, logger domain.Logger) *DeleteAddress {
	return &DeleteAddress{registry: registry, logger: logger}
}

// Execute removes the address.
func (uc *DeleteAddress) Execute(_ context.Context, in DeleteAddressInput) (*DeleteAddressOutput, error) {
	addresses, err := uc.registry.LoadAddresses()
	if err != nil {
		return nil, fmt.Errorf("load addresses: %w", err)
	}
	address, err := domain.FindByID(addresses, in.AddressID, func(a *domain.Address) string { return a.ID }, domain.ErrAddressNotFound)
	if err != nil {
		return nil, err
	}

	addresses = slices.DeleteFunc(addresses, func(a *domain.Address) bool { return a.ID == address.ID })
	if err := uc.registry.SaveAddresses(addresses); err != nil {
		return nil, fmt.Errorf("save addresses: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(address.ClientID, "address", fmt.Sprintf("deleted %s", domain.ShortID(address.ID)))
	}
	return &DeleteAddressOutput{Address: address}, nil
}
