package tripstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ontravel-app/travel-journal-api/internal/domain"
	"github.com/ontravel-app/travel-journal-api/internal/ports/out/tripstore"
)

// Repo is a Postgres implementation of tripstore.Store.
//
// The seq identity column preserves insertion order across listings; all
// List queries order by it.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, t domain.Trip) (domain.TripID, error) {
	if r.pool == nil {
		return "", errors.New("nil postgres pool")
	}
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO trips (id, owner_name, description, trip_date, location, image_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, t.OwnerName, t.Description, t.Date, t.Location, t.ImageRef)
	if err != nil {
		return "", unavailable(err)
	}
	return domain.TripID(id), nil
}

func (r *Repo) Get(ctx context.Context, id domain.TripID) (domain.Trip, error) {
	if r.pool == nil {
		return domain.Trip{}, errors.New("nil postgres pool")
	}
	tripUUID, err := uuid.Parse(string(id))
	if err != nil {
		return domain.Trip{}, tripstore.ErrNotFound
	}
	var t domain.Trip
	err = r.pool.QueryRow(ctx, `
		SELECT owner_name, description, trip_date, location, image_ref
		FROM trips WHERE id = $1
	`, tripUUID).Scan(&t.OwnerName, &t.Description, &t.Date, &t.Location, &t.ImageRef)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Trip{}, tripstore.ErrNotFound
	}
	if err != nil {
		return domain.Trip{}, unavailable(err)
	}
	return t, nil
}

func (r *Repo) List(ctx context.Context) ([]tripstore.Record, error) {
	return r.list(ctx, `
		SELECT id, owner_name, description, trip_date, location, image_ref
		FROM trips ORDER BY seq
	`)
}

func (r *Repo) ListByOwner(ctx context.Context, owner string) ([]tripstore.Record, error) {
	return r.list(ctx, `
		SELECT id, owner_name, description, trip_date, location, image_ref
		FROM trips WHERE owner_name = $1 ORDER BY seq
	`, owner)
}

func (r *Repo) list(ctx context.Context, query string, args ...any) ([]tripstore.Record, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	out := make([]tripstore.Record, 0)
	for rows.Next() {
		var (
			id uuid.UUID
			t  domain.Trip
		)
		if err := rows.Scan(&id, &t.OwnerName, &t.Description, &t.Date, &t.Location, &t.ImageRef); err != nil {
			return nil, unavailable(err)
		}
		out = append(out, tripstore.Record{ID: domain.TripID(id.String()), Trip: t})
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return out, nil
}

func (r *Repo) Update(ctx context.Context, id domain.TripID, p tripstore.Patch) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	tripUUID, err := uuid.Parse(string(id))
	if err != nil {
		return tripstore.ErrNotFound
	}
	// COALESCE keeps stored values for unsupplied fields (merge semantics).
	tag, err := r.pool.Exec(ctx, `
		UPDATE trips SET
			description = COALESCE($2, description),
			trip_date   = COALESCE($3, trip_date),
			location    = COALESCE($4, location),
			image_ref   = COALESCE($5, image_ref)
		WHERE id = $1
	`, tripUUID, p.Description, p.Date, p.Location, p.ImageRef)
	if err != nil {
		return unavailable(err)
	}
	if tag.RowsAffected() == 0 {
		return tripstore.ErrNotFound
	}
	return nil
}

// Delete is idempotent: a missing id is not an error.
func (r *Repo) Delete(ctx context.Context, id domain.TripID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	tripUUID, err := uuid.Parse(string(id))
	if err != nil {
		return nil
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM trips WHERE id = $1`, tripUUID); err != nil {
		return unavailable(err)
	}
	return nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", tripstore.ErrUnavailable, err)
}
