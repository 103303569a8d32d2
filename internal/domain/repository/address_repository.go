// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"addresses/internal/domain/entity"
	"addresses/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when no live address matches the lookup.
var ErrAddressNotFound = errors.New("address not found")

// ListQuery accumulates the composed filter predicates for a listing.
// Predicates combine as a logical AND.
type ListQuery struct {
	Primary     bool
	Warehouse   bool
	Billing     bool
	Shipping    bool
	CountryCode string
	WithDeleted bool
}

// ListOption narrows an address listing by one predicate.
type ListOption func(*ListQuery)

// OnlyPrimary keeps addresses flagged as primary.
func OnlyPrimary() ListOption {
	return func(q *ListQuery) { q.Primary = true }
}

// OnlyWarehouse keeps addresses flagged as warehouse.
func OnlyWarehouse() ListOption {
	return func(q *ListQuery) { q.Warehouse = true }
}

// OnlyBilling keeps addresses flagged as billing.
func OnlyBilling() ListOption {
	return func(q *ListQuery) { q.Billing = true }
}

// OnlyShipping keeps addresses flagged as shipping.
func OnlyShipping() ListOption {
	return func(q *ListQuery) { q.Shipping = true }
}

// InCountry keeps addresses in the given ISO 3166-1 alpha-2 country.
// Matching is case-insensitive since stored codes are upper-cased.
func InCountry(code string) ListOption {
	return func(q *ListQuery) { q.CountryCode = code }
}

// WithDeleted includes soft-deleted rows, which default listings exclude.
func WithDeleted() ListOption {
	return func(q *ListQuery) { q.WithDeleted = true }
}

// AddressRepository defines the interface for address persistence.
// It supports polymorphic associations where addresses can belong to owners of
// any kind, identified by the (owner_type, owner_id) pair.
type AddressRepository interface {
	// CreateAddress persists a new address. Generated id and timestamps are
	// written back onto the entity.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves a live (not soft-deleted) address by id.
	// Returns ErrAddressNotFound when no live row matches.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// ListAddresses retrieves addresses matching every given option, in
	// insertion order (created_at, then id).
	ListAddresses(ctx context.Context, opts ...ListOption) ([]*entity.Address, error)

	// ListAddressesByOwner retrieves the owner's addresses matching every
	// given option, primary first, then insertion order.
	ListAddressesByOwner(ctx context.Context, owner entity.AddressOwner, opts ...ListOption) ([]*entity.Address, error)

	// CountAddressesByOwner returns how many live addresses the owner has.
	CountAddressesByOwner(ctx context.Context, owner entity.AddressOwner) (int64, error)

	// UpdateAddress persists the full state of an existing live address.
	// Returns ErrAddressNotFound when no live row matches the entity's id.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// SoftDeleteAddress marks the address deleted. Idempotent: deleting an
	// already-deleted or unknown id is a no-op success.
	SoftDeleteAddress(ctx context.Context, id uuid.UUID) error

	// SoftDeleteAddressesByOwner marks every live address of the owner
	// deleted and returns how many rows were affected.
	SoftDeleteAddressesByOwner(ctx context.Context, owner entity.AddressOwner) (int64, error)
}
