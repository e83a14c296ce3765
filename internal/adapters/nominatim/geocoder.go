// Package nominatim implements the geocoder port against a Nominatim
// reverse-geocoding endpoint (the public OSM instance or a self-hosted one).
package nominatim

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ontravel-app/travel-journal-api/internal/ports/out/geocoder"
)

// Geocoder resolves coordinates via GET /reverse?format=jsonv2.
type Geocoder struct {
	http *resty.Client
}

// New builds a Geocoder. userAgent is required by the public Nominatim usage
// policy; requests without one get rejected.
func New(baseURL, userAgent string, timeout time.Duration) *Geocoder {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout)
	return &Geocoder{http: c}
}

// reverseResponse is the subset of the jsonv2 payload the journal uses.
type reverseResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
		State   string `json:"state"`
	} `json:"address"`
}

func (g *Geocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (geocoder.Place, error) {
	var out reverseResponse
	resp, err := g.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "jsonv2",
			"lat":    strconv.FormatFloat(lat, 'f', -1, 64),
			"lon":    strconv.FormatFloat(lon, 'f', -1, 64),
		}).
		SetResult(&out).
		Get("/reverse")
	if err != nil {
		return geocoder.Place{}, fmt.Errorf("%w: %v", geocoder.ErrUnavailable, err)
	}
	if resp.StatusCode() == http.StatusForbidden || resp.StatusCode() == http.StatusTooManyRequests {
		return geocoder.Place{}, geocoder.ErrPermissionDenied
	}
	// Nominatim answers 404 for coordinates with no known address; that is
	// "nothing here", not a failure.
	if resp.StatusCode() == http.StatusNotFound {
		return geocoder.Place{}, nil
	}
	if resp.IsError() {
		return geocoder.Place{}, fmt.Errorf("%w: status %d", geocoder.ErrUnavailable, resp.StatusCode())
	}

	city := out.Address.City
	if city == "" {
		city = out.Address.Town
	}
	if city == "" {
		city = out.Address.Village
	}
	return geocoder.Place{
		City:      city,
		Subregion: out.Address.County,
		Region:    out.Address.State,
	}, nil
}
