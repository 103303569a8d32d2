// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Address is the core entity for a postal/contact address.
// It can be attached to any kind of owner (a user, an order, a warehouse, ...)
// through the polymorphic (OwnerType, OwnerID) pair; no static foreign key
// exists because the set of owner kinds is open-ended.
type Address struct {
	ID uuid.UUID // The unique identifier for the address.

	OwnerType string // Stable kind tag of the owning entity (e.g., "order", "user").
	OwnerID   int64  // Owner-local identifier within that kind.

	Label        string // Optional user-defined label, e.g., "Home", "Office".
	GivenName    string // Required recipient given name.
	FamilyName   string // Optional recipient family name.
	Organization string // Optional organization name.

	Address1    string // Required first street line.
	Address2    string // Optional second street line.
	City        string
	State       string
	PostalCode  string
	CountryCode string // ISO 3166-1 alpha-2, upper-cased; empty when unknown.
	Phone       string

	// Latitude/Longitude are nil until supplied by the caller or filled in by
	// the geocoding enrichment step. Stored with 7 fractional digits.
	Latitude  *float64
	Longitude *float64

	// Role flags are independent; no combination is structurally forbidden.
	IsPrimary   bool
	IsWarehouse bool
	IsBilling   bool
	IsShipping  bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete marker; nil while the address is live.
}

// FullName returns the recipient name as "GivenName FamilyName".
// The separator is omitted when FamilyName is empty.
func (a *Address) FullName() string {
	return strings.TrimSpace(a.GivenName + " " + a.FamilyName)
}

// IsDeleted reports whether the address has been soft-deleted.
func (a *Address) IsDeleted() bool {
	return a.DeletedAt != nil
}

// BelongsTo reports whether the address is owned by the given owner.
func (a *Address) BelongsTo(owner AddressOwner) bool {
	return a.OwnerType == owner.AddressOwnerType() && a.OwnerID == owner.AddressOwnerID()
}
