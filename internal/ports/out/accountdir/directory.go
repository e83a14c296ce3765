package accountdir

import (
	"context"

	"github.com/ontravel-app/travel-journal-api/internal/domain"
)

// Directory provides access to persisted accounts, keyed by identity key.
//
// Uniqueness expectations:
//   - At most one account per identity key. The application layer performs a
//     check-then-create on signup; the directory itself is not required to
//     make that sequence atomic, so two
//     concurrent signups for the same key may both succeed with last write
//     winning. Implementations that can reject the second create cheaply
//     should return ErrAlreadyExists, but callers must not rely on it.
type Directory interface {
	// Exists reports whether a record is present at key.
	Exists(ctx context.Context, key domain.IdentityKey) (bool, error)

	// Create stores a new account at its identity key.
	Create(ctx context.Context, a domain.Account) error

	// Get returns the account at key, or ErrNotFound.
	Get(ctx context.Context, key domain.IdentityKey) (domain.Account, error)
}
