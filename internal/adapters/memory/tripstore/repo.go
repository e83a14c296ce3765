package tripstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ontravel-app/travel-journal-api/internal/domain"
	"github.com/ontravel-app/travel-journal-api/internal/ports/out/tripstore"
)

// Repo is an in-memory implementation of tripstore.Store.
// It is safe for concurrent use.
//
// Insertion order is tracked explicitly so List and ListByOwner report
// records in the order they were created.
type Repo struct {
	mu    sync.RWMutex
	byID  map[domain.TripID]domain.Trip
	order []domain.TripID

	newTripID func() domain.TripID
}

func NewRepo() *Repo {
	return &Repo{
		byID: make(map[domain.TripID]domain.Trip),
		newTripID: func() domain.TripID {
			return domain.TripID(uuid.NewString())
		},
	}
}

func (r *Repo) Create(ctx context.Context, t domain.Trip) (domain.TripID, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.newTripID()
	r.byID[id] = t
	r.order = append(r.order, id)
	return id, nil
}

func (r *Repo) Get(ctx context.Context, id domain.TripID) (domain.Trip, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok {
		return domain.Trip{}, tripstore.ErrNotFound
	}
	return t, nil
}

func (r *Repo) List(ctx context.Context) ([]tripstore.Record, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]tripstore.Record, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, tripstore.Record{ID: id, Trip: r.byID[id]})
	}
	return out, nil
}

func (r *Repo) ListByOwner(ctx context.Context, owner string) ([]tripstore.Record, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]tripstore.Record, 0)
	for _, id := range r.order {
		t := r.byID[id]
		if t.OwnerName == owner {
			out = append(out, tripstore.Record{ID: id, Trip: t})
		}
	}
	return out, nil
}

func (r *Repo) Update(ctx context.Context, id domain.TripID, p tripstore.Patch) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return tripstore.ErrNotFound
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
	if p.ImageRef != nil {
		t.ImageRef = *p.ImageRef
	}
	r.byID[id] = t
	return nil
}

// Delete is idempotent: removing an absent id succeeds.
func (r *Repo) Delete(ctx context.Context, id domain.TripID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
