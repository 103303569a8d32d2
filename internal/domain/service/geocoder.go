// Package service defines the domain service ports implemented by the
// infrastructure layer.
package service

import (
	"context"

	"addresses/internal/domain/entity"
	"addresses/internal/errors"

	"github.com/paulmach/orb"
)

// ErrNoResults is returned when the provider resolves the query but finds no
// matching location.
var ErrNoResults = errors.New("geocoder: no results")

// Geocoder resolves a textual address into geographic coordinates.
type Geocoder interface {
	// Geocode looks up the address and returns the best-match location as an
	// orb.Point (lon, lat). Returns ErrNoResults for an empty result set.
	Geocode(ctx context.Context, address *entity.Address) (orb.Point, error)
}
