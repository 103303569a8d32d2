// Package geocode implements the Geocoder port against a Google-style
// geocoding HTTP API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"addresses/config"
	"addresses/internal/domain/entity"
	"addresses/internal/domain/service"
	"addresses/internal/errors"

	"github.com/paulmach/orb"
)

// googleGeocoder resolves addresses through the provider's
// /maps/api/geocode/json endpoint.
type googleGeocoder struct {
	baseURL    string
	httpClient *http.Client
}

// geocodeResponse mirrors the provider's JSON body; only the coordinates of
// the first result are consumed.
type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NewGoogleGeocoder creates a geocoder bound to the configured provider.
// The HTTP client carries the configured timeout so a slow provider can never
// stall the write path beyond it.
func NewGoogleGeocoder(cfg *config.GeocodingConfig) service.Geocoder {
	return &googleGeocoder{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Geocode looks up the address and returns the first result's location.
func (g *googleGeocoder) Geocode(ctx context.Context, address *entity.Address) (orb.Point, error) {
	url := fmt.Sprintf("%s/maps/api/geocode/json?address=%s&sensor=false", g.baseURL, composeQuery(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return orb.Point{}, errors.WithStack(err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return orb.Point{}, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, errors.Errorf("geocoder: unexpected status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return orb.Point{}, errors.Wrap(err, "geocoder: decode response")
	}

	if len(body.Results) == 0 {
		return orb.Point{}, service.ErrNoResults
	}

	location := body.Results[0].Geometry.Location

	return orb.Point{location.Lng, location.Lat}, nil
}

// composeQuery builds the provider query: the first street line plus a
// "city, state postal_code" segment, segments joined by ", ", spaces
// replaced with "+".
func composeQuery(address *entity.Address) string {
	segments := []string{
		address.Address1,
		fmt.Sprintf("%s, %s %s", address.City, address.State, address.PostalCode),
	}

	return strings.ReplaceAll(strings.Join(segments, ", "), " ", "+")
}
