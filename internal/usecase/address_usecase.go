// Package usecase defines the application-facing interfaces of the module.
package usecase

import (
	"context"

	"addresses/internal/domain/entity"
	"addresses/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateAddressInput represents the input for attaching a new address to an owner.
type CreateAddressInput struct {
	Label        string `json:"label"`
	GivenName    string `json:"given_name"`
	FamilyName   string `json:"family_name"`
	Organization string `json:"organization"`

	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	CountryCode string `json:"country_code"`
	Phone       string `json:"phone"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	IsPrimary   bool `json:"is_primary"`
	IsWarehouse bool `json:"is_warehouse"`
	IsBilling   bool `json:"is_billing"`
	IsShipping  bool `json:"is_shipping"`
}

// UpdateAddressInput represents a partial update; nil fields are left untouched.
type UpdateAddressInput struct {
	Label        *string `json:"label,omitempty"`
	GivenName    *string `json:"given_name,omitempty"`
	FamilyName   *string `json:"family_name,omitempty"`
	Organization *string `json:"organization,omitempty"`

	Address1    *string `json:"address1,omitempty"`
	Address2    *string `json:"address2,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	PostalCode  *string `json:"postal_code,omitempty"`
	CountryCode *string `json:"country_code,omitempty"`
	Phone       *string `json:"phone,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	IsPrimary   *bool `json:"is_primary,omitempty"`
	IsWarehouse *bool `json:"is_warehouse,omitempty"`
	IsBilling   *bool `json:"is_billing,omitempty"`
	IsShipping  *bool `json:"is_shipping,omitempty"`
}

// AddressUsecase defines the address management use cases, including the
// Addressable capability owners rely on (the Addresses accessor and the
// cascade delete obligation).
type AddressUsecase interface {
	// CreateAddress validates the input, runs the geocoding enrichment when
	// enabled, and persists a new address scoped to the owner.
	CreateAddress(ctx context.Context, owner entity.AddressOwner, input *CreateAddressInput) (*entity.Address, error)

	// GetAddress retrieves a live address by id.
	GetAddress(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// UpdateAddress applies the partial update, re-validates and re-geocodes,
	// then persists. Fails with repository.ErrAddressNotFound when no live row
	// matches.
	UpdateAddress(ctx context.Context, id uuid.UUID, input *UpdateAddressInput) (*entity.Address, error)

	// DeleteAddress soft-deletes the address. Idempotent.
	DeleteAddress(ctx context.Context, id uuid.UUID) error

	// ListAddresses lists addresses across all owners, narrowed by the given
	// composable filters (logical AND).
	ListAddresses(ctx context.Context, opts ...repository.ListOption) ([]*entity.Address, error)

	// Addresses returns the owner's live addresses, primary first.
	Addresses(ctx context.Context, owner entity.AddressOwner, opts ...repository.ListOption) ([]*entity.Address, error)

	// PrimaryAddress returns the owner's primary address, or
	// repository.ErrAddressNotFound when none is flagged.
	PrimaryAddress(ctx context.Context, owner entity.AddressOwner) (*entity.Address, error)

	// CountOwnerAddresses returns how many live addresses the owner has.
	CountOwnerAddresses(ctx context.Context, owner entity.AddressOwner) (int64, error)

	// DeleteOwnerAddresses cascades: soft-deletes every live address of the
	// owner inside one transaction. Any failure aborts the whole cascade, and
	// the owner's own deletion must not proceed.
	DeleteOwnerAddresses(ctx context.Context, owner entity.AddressOwner) error
}
