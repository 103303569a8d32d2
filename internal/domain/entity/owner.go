// Package entity contains the core business objects of the project.
package entity

// AddressOwner is the contract an entity implements to hold addresses.
// The kind tag must be stable and unique per owner type; the id is the
// owner-local identifier. Together they form the polymorphic reference
// stored on every Address row.
//
// Implementing the interface grants the owner the Addresses accessor on the
// address use case, and obliges the owning application to invoke the cascade
// delete when the owner itself is deleted.
type AddressOwner interface {
	// AddressOwnerType returns the stable kind tag, e.g., "order".
	AddressOwnerType() string

	// AddressOwnerID returns the owner-local identifier.
	AddressOwnerID() int64
}

// OwnerRef is a plain (kind, id) pair satisfying AddressOwner. It is the
// reference form used when no concrete owner entity is at hand.
type OwnerRef struct {
	Type string
	ID   int64
}

// AddressOwnerType returns the kind tag.
func (r OwnerRef) AddressOwnerType() string { return r.Type }

// AddressOwnerID returns the owner-local identifier.
func (r OwnerRef) AddressOwnerID() int64 { return r.ID }
