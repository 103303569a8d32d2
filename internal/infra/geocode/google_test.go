package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"addresses/config"
	"addresses/internal/domain/entity"
	"addresses/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress() *entity.Address {
	return &entity.Address{
		Address1:   "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62704",
	}
}

func newTestGeocoder(baseURL string) service.Geocoder {
	return NewGoogleGeocoder(&config.GeocodingConfig{
		Enabled: true,
		BaseURL: baseURL,
		Timeout: time.Second,
	})
}

func TestGoogleGeocoder_Geocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		assert.Equal(t, "address=1+Main+St,+Springfield,+IL+62704&sensor=false", r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{"geometry": {"location": {"lat": 39.7817213, "lng": -89.6501481}}},
				{"geometry": {"location": {"lat": 0, "lng": 0}}}
			]
		}`))
	}))
	defer server.Close()

	point, err := newTestGeocoder(server.URL).Geocode(context.Background(), testAddress())
	require.NoError(t, err)
	assert.InDelta(t, 39.7817213, point.Lat(), 1e-9)
	assert.InDelta(t, -89.6501481, point.Lon(), 1e-9)
}

func TestGoogleGeocoder_Geocode_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	_, err := newTestGeocoder(server.URL).Geocode(context.Background(), testAddress())
	assert.ErrorIs(t, err, service.ErrNoResults)
}

func TestGoogleGeocoder_Geocode_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestGeocoder(server.URL).Geocode(context.Background(), testAddress())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 429")
}

func TestGoogleGeocoder_Geocode_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestGeocoder(server.URL).Geocode(context.Background(), testAddress())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestGoogleGeocoder_Geocode_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestGeocoder(server.URL).Geocode(ctx, testAddress())
	assert.ErrorIs(t, err, context.Canceled)
}
