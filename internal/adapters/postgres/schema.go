package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the DDL for the journal tables.
//
// trips.seq exists only to report insertion order from List queries; it is
// never exposed. trip_date is text on purpose: the stored value is whatever
// ISO-8601 string the client wrote and round-trips unparsed.
const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
	identity_key text PRIMARY KEY,
	name         text NOT NULL,
	email        text NOT NULL,
	password     text NOT NULL
);

CREATE TABLE IF NOT EXISTS trips (
	id         uuid PRIMARY KEY,
	seq        bigint GENERATED ALWAYS AS IDENTITY,
	owner_name text NOT NULL,
	description text NOT NULL,
	trip_date  text NOT NULL,
	location   text NOT NULL,
	image_ref  text NOT NULL
);

CREATE INDEX IF NOT EXISTS trips_owner_name_idx ON trips (owner_name);
`

// Migrate applies the schema. It is idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, Schema)
	return err
}
