package nominatim

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geocoderport "github.com/ontravel-app/travel-journal-api/internal/ports/out/geocoder"
)

func TestReverseGeocode_City(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"address":{"city":"Porto Alegre","county":"Porto Alegre","state":"Rio Grande do Sul"}}`)
	}))
	t.Cleanup(srv.Close)

	g := New(srv.URL, "travel-journal-api test", 5*time.Second)
	place, err := g.ReverseGeocode(context.Background(), -30.0346, -51.2177)
	require.NoError(t, err)
	assert.Equal(t, "Porto Alegre", place.City)
	assert.Equal(t, "Rio Grande do Sul", place.Region)
}

func TestReverseGeocode_TownFallback(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"address":{"town":"Gramado","county":"Gramado","state":"Rio Grande do Sul"}}`)
	}))
	t.Cleanup(srv.Close)

	g := New(srv.URL, "travel-journal-api test", 5*time.Second)
	place, err := g.ReverseGeocode(context.Background(), -29.3747, -50.8764)
	require.NoError(t, err)
	assert.Equal(t, "Gramado", place.City)
}

func TestReverseGeocode_NothingKnownIsEmptyPlace(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	g := New(srv.URL, "travel-journal-api test", 5*time.Second)
	place, err := g.ReverseGeocode(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, geocoderport.Place{}, place)
}

func TestReverseGeocode_ForbiddenMapsToPermissionDenied(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	g := New(srv.URL, "travel-journal-api test", 5*time.Second)
	_, err := g.ReverseGeocode(context.Background(), 1, 1)
	require.True(t, errors.Is(err, geocoderport.ErrPermissionDenied), "err=%v", err)
}

func TestReverseGeocode_ServerErrorMapsToUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	g := New(srv.URL, "travel-journal-api test", 5*time.Second)
	_, err := g.ReverseGeocode(context.Background(), 1, 1)
	require.True(t, errors.Is(err, geocoderport.ErrUnavailable), "err=%v", err)
}
