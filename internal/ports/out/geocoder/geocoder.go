package geocoder

import (
	"context"
	"errors"
)

// Place is a reverse-geocoding result. Any field may be empty; an entirely
// empty Place is a valid "nothing known about these coordinates" answer.
type Place struct {
	City      string
	Subregion string
	Region    string
}

// Geocoder resolves coordinates to a human-readable place.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (Place, error)
}

var (
	// ErrPermissionDenied indicates the provider refused the lookup.
	ErrPermissionDenied = errors.New("geocoder permission denied")

	// ErrUnavailable indicates the provider could not be reached.
	ErrUnavailable = errors.New("geocoder unavailable")
)
