package accountdir

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ontravel-app/travel-journal-api/internal/adapters/postgres"
	"github.com/ontravel-app/travel-journal-api/internal/domain"
	"github.com/ontravel-app/travel-journal-api/internal/ports/out/accountdir"
)

// Repo is a Postgres implementation of accountdir.Directory.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Exists(ctx context.Context, key domain.IdentityKey) (bool, error) {
	if r.pool == nil {
		return false, errors.New("nil postgres pool")
	}
	var one int
	err := r.pool.QueryRow(ctx,
		`SELECT 1 FROM accounts WHERE identity_key = $1`, string(key),
	).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, unavailable(err)
	}
	return true, nil
}

func (r *Repo) Create(ctx context.Context, a domain.Account) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (identity_key, name, email, password)
		VALUES ($1, $2, $3, $4)
	`, string(a.IdentityKey), a.Name, a.Email, a.Password)
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
			return accountdir.ErrAlreadyExists
		}
		return unavailable(err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, key domain.IdentityKey) (domain.Account, error) {
	if r.pool == nil {
		return domain.Account{}, errors.New("nil postgres pool")
	}
	a := domain.Account{IdentityKey: key}
	err := r.pool.QueryRow(ctx, `
		SELECT name, email, password FROM accounts WHERE identity_key = $1
	`, string(key)).Scan(&a.Name, &a.Email, &a.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Account{}, accountdir.ErrNotFound
	}
	if err != nil {
		return domain.Account{}, unavailable(err)
	}
	return a, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", accountdir.ErrUnavailable, err)
}
