package trips

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ontravel-app/travel-journal-api/internal/domain"
	"github.com/ontravel-app/travel-journal-api/internal/ports/out/geocoder"
	"github.com/ontravel-app/travel-journal-api/internal/ports/out/tripstore"
)

type Service struct {
	store tripstore.Store
	geo   geocoder.Geocoder
}

func NewService(store tripstore.Store, geo geocoder.Geocoder) *Service {
	return &Service{store: store, geo: geo}
}

func (s *Service) CreateTrip(ctx context.Context, in CreateTripInput) (domain.TripID, domain.Trip, error) {
	missing := map[string]any{}
	for field, v := range map[string]string{
		"ownerName":   in.OwnerName,
		"description": in.Description,
		"date":        in.Date,
		"location":    in.Location,
		"imageRef":    in.ImageRef,
	} {
		if strings.TrimSpace(v) == "" {
			missing[field] = "must be non-empty"
		}
	}
	if len(missing) > 0 {
		return "", domain.Trip{}, &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "all trip fields are required",
			Details: missing,
		}
	}

	t := domain.Trip{
		OwnerName:   in.OwnerName,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		ImageRef:    in.ImageRef,
	}
	id, err := s.store.Create(ctx, t)
	if err != nil {
		return "", domain.Trip{}, storeError(err)
	}
	return id, t, nil
}

// ListTrips returns every trip record in insertion order.
func (s *Service) ListTrips(ctx context.Context) ([]tripstore.Record, error) {
	rs, err := s.store.List(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return rs, nil
}

// ListTripsByOwner returns the caller's trips. The result is re-derived from
// the store on every call; there is no caching layer, each screen view
// re-fetches.
func (s *Service) ListTripsByOwner(ctx context.Context, owner string) ([]tripstore.Record, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid owner",
			Details: map[string]any{"owner": "must be non-empty"},
		}
	}
	rs, err := s.store.ListByOwner(ctx, owner)
	if err != nil {
		return nil, storeError(err)
	}
	return rs, nil
}

func (s *Service) GetTrip(ctx context.Context, id domain.TripID) (domain.Trip, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, tripstore.ErrNotFound) {
			return domain.Trip{}, notFound()
		}
		return domain.Trip{}, storeError(err)
	}
	return t, nil
}

// UpdateTrip merges the specified fields into the stored record. Unspecified
// fields are left untouched (merge, not replace). Description and location,
// when specified, must be non-empty.
func (s *Service) UpdateTrip(ctx context.Context, id domain.TripID, in UpdateTripInput) (domain.Trip, error) {
	var p tripstore.Patch

	if in.Description.IsSpecified() {
		if in.Description.IsNull() || strings.TrimSpace(in.Description.Value()) == "" {
			return domain.Trip{}, &Error{
				Status:  422,
				Code:    "VALIDATION_ERROR",
				Message: "invalid description",
				Details: map[string]any{"description": "must be non-empty"},
			}
		}
		v := in.Description.Value()
		p.Description = &v
	}
	if in.Location.IsSpecified() {
		if in.Location.IsNull() || strings.TrimSpace(in.Location.Value()) == "" {
			return domain.Trip{}, &Error{
				Status:  422,
				Code:    "VALIDATION_ERROR",
				Message: "invalid location",
				Details: map[string]any{"location": "must be non-empty"},
			}
		}
		v := in.Location.Value()
		p.Location = &v
	}
	if in.Date.IsSpecified() {
		if in.Date.IsNull() {
			return domain.Trip{}, &Error{
				Status:  422,
				Code:    "VALIDATION_ERROR",
				Message: "invalid date",
				Details: map[string]any{"date": "cannot be null"},
			}
		}
		v := in.Date.Value()
		p.Date = &v
	}
	if in.ImageRef.IsSpecified() {
		if in.ImageRef.IsNull() {
			return domain.Trip{}, &Error{
				Status:  422,
				Code:    "VALIDATION_ERROR",
				Message: "invalid imageRef",
				Details: map[string]any{"imageRef": "cannot be null"},
			}
		}
		v := in.ImageRef.Value()
		p.ImageRef = &v
	}

	if err := s.store.Update(ctx, id, p); err != nil {
		if errors.Is(err, tripstore.ErrNotFound) {
			return domain.Trip{}, notFound()
		}
		return domain.Trip{}, storeError(err)
	}
	t, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, tripstore.ErrNotFound) {
			return domain.Trip{}, notFound()
		}
		return domain.Trip{}, storeError(err)
	}
	return t, nil
}

// DeleteTrip removes the record. Deleting an id that is already gone still
// reports success; removal is idempotent.
func (s *Service) DeleteTrip(ctx context.Context, id domain.TripID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return storeError(err)
	}
	return nil
}

// ResolveLocation turns coordinates into the "City, Region" string the trip
// form stores. Fallback order is city, then subregion, then a fixed unknown
// label. The region suffix is appended even when empty.
func (s *Service) ResolveLocation(ctx context.Context, lat, lon float64) (string, error) {
	place, err := s.geo.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		if errors.Is(err, geocoder.ErrPermissionDenied) {
			return "", &Error{
				Status:  403,
				Code:    "PERMISSION_DENIED",
				Message: "Permission to access location was denied.",
			}
		}
		return "", &Error{
			Status:  503,
			Code:    "STORE_UNAVAILABLE",
			Message: "The location service is temporarily unavailable.",
		}
	}

	city := place.City
	if city == "" {
		city = place.Subregion
	}
	if city == "" {
		city = "Unknown location"
	}
	return fmt.Sprintf("%s, %s", city, place.Region), nil
}

func notFound() error {
	return &Error{
		Status:  404,
		Code:    "TRIP_NOT_FOUND",
		Message: "No trip exists with this id.",
	}
}

func storeError(err error) error {
	if errors.Is(err, tripstore.ErrUnavailable) {
		return &Error{
			Status:  503,
			Code:    "STORE_UNAVAILABLE",
			Message: "The trip store is temporarily unavailable.",
		}
	}
	return err
}
