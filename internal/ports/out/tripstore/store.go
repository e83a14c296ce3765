package tripstore

import (
	"context"

	"github.com/ontravel-app/travel-journal-api/internal/domain"
)

// Record pairs a trip with its store-assigned id.
type Record struct {
	ID   domain.TripID
	Trip domain.Trip
}

// Patch names the trip fields a merge update may change. A nil field is left
// untouched; there is no way to clear a field to empty through a patch unless
// the caller supplies an empty string explicitly. OwnerName is immutable.
type Patch struct {
	Description *string
	Date        *string
	Location    *string
	ImageRef    *string
}

// Store provides access to persisted trips.
//
// Ordering expectations:
//   - List and ListByOwner return records in insertion order as reported by
//     the store. No other ordering is guaranteed.
type Store interface {
	// Create stores a new trip and returns the assigned opaque id.
	Create(ctx context.Context, t domain.Trip) (domain.TripID, error)

	// Get returns the trip at id, or ErrNotFound.
	Get(ctx context.Context, id domain.TripID) (domain.Trip, error)

	// List returns every trip record. An empty store yields an empty slice,
	// not an error.
	List(ctx context.Context) ([]Record, error)

	// ListByOwner returns the subset of List whose OwnerName equals owner
	// exactly, ids and field values unchanged.
	ListByOwner(ctx context.Context, owner string) ([]Record, error)

	// Update merges the supplied patch fields into the record at id.
	// Unspecified fields keep their stored values. Returns ErrNotFound if no
	// record exists at id.
	Update(ctx context.Context, id domain.TripID, p Patch) error

	// Delete removes the record at id. Deleting an absent id is not an
	// error; removal is idempotent.
	Delete(ctx context.Context, id domain.TripID) error
}
