package firebasedb

import (
	"context"
	"sort"

	"github.com/ontravel-app/travel-journal-api/internal/domain"
	"github.com/ontravel-app/travel-journal-api/internal/ports/out/tripstore"
)

// tripRecord is the /trips/{id} node shape written by the app. The field
// names (userName, image) match the existing database and must not change.
type tripRecord struct {
	UserName    string `json:"userName"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Image       string `json:"image"`
}

// TripStore implements tripstore.Store against the /trips collection.
type TripStore struct {
	c *Client
}

func NewTripStore(c *Client) *TripStore {
	return &TripStore{c: c}
}

func (s *TripStore) Create(ctx context.Context, t domain.Trip) (domain.TripID, error) {
	id, err := s.c.Append(ctx, "trips", toRecord(t))
	if err != nil {
		return "", unavailable(tripstore.ErrUnavailable, err)
	}
	return domain.TripID(id), nil
}

func (s *TripStore) Get(ctx context.Context, id domain.TripID) (domain.Trip, error) {
	var rec tripRecord
	found, err := s.c.Read(ctx, tripPath(id), &rec)
	if err != nil {
		return domain.Trip{}, unavailable(tripstore.ErrUnavailable, err)
	}
	if !found {
		return domain.Trip{}, tripstore.ErrNotFound
	}
	return fromRecord(rec), nil
}

// List reads the whole /trips node. Push ids are chronological when sorted
// lexicographically, so sorting the keys reproduces insertion order.
func (s *TripStore) List(ctx context.Context) ([]tripstore.Record, error) {
	var nodes map[string]tripRecord
	found, err := s.c.Read(ctx, "trips", &nodes)
	if err != nil {
		return nil, unavailable(tripstore.ErrUnavailable, err)
	}
	if !found {
		return []tripstore.Record{}, nil
	}

	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]tripstore.Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, tripstore.Record{ID: domain.TripID(id), Trip: fromRecord(nodes[id])})
	}
	return out, nil
}

// ListByOwner fetches everything and filters client-side, exactly as the
// app did against the RTDB (no server-side query on userName).
func (s *TripStore) ListByOwner(ctx context.Context, owner string) ([]tripstore.Record, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]tripstore.Record, 0, len(all))
	for _, r := range all {
		if r.Trip.OwnerName == owner {
			out = append(out, r)
		}
	}
	return out, nil
}

// Update PATCHes only the supplied fields. The existence check comes first
// because an RTDB merge on an absent node would create a partial record
// instead of failing.
func (s *TripStore) Update(ctx context.Context, id domain.TripID, p tripstore.Patch) error {
	var rec tripRecord
	found, err := s.c.Read(ctx, tripPath(id), &rec)
	if err != nil {
		return unavailable(tripstore.ErrUnavailable, err)
	}
	if !found {
		return tripstore.ErrNotFound
	}

	partial := map[string]any{}
	if p.Description != nil {
		partial["description"] = *p.Description
	}
	if p.Date != nil {
		partial["date"] = *p.Date
	}
	if p.Location != nil {
		partial["location"] = *p.Location
	}
	if p.ImageRef != nil {
		partial["image"] = *p.ImageRef
	}
	if len(partial) == 0 {
		return nil
	}
	if err := s.c.Merge(ctx, tripPath(id), partial); err != nil {
		return unavailable(tripstore.ErrUnavailable, err)
	}
	return nil
}

func (s *TripStore) Delete(ctx context.Context, id domain.TripID) error {
	if err := s.c.Delete(ctx, tripPath(id)); err != nil {
		return unavailable(tripstore.ErrUnavailable, err)
	}
	return nil
}

func tripPath(id domain.TripID) string {
	return "trips/" + string(id)
}

func toRecord(t domain.Trip) tripRecord {
	return tripRecord{
		UserName:    t.OwnerName,
		Description: t.Description,
		Date:        t.Date,
		Location:    t.Location,
		Image:       t.ImageRef,
	}
}

func fromRecord(rec tripRecord) domain.Trip {
	return domain.Trip{
		OwnerName:   rec.UserName,
		Description: rec.Description,
		Date:        rec.Date,
		Location:    rec.Location,
		ImageRef:    rec.Image,
	}
}
