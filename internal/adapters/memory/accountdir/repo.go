package accountdir

import (
	"context"
	"sync"

	"github.com/ontravel-app/travel-journal-api/internal/domain"
	"github.com/ontravel-app/travel-journal-api/internal/ports/out/accountdir"
)

// Repo is an in-memory implementation of accountdir.Directory.
// It is safe for concurrent use.
type Repo struct {
	mu    sync.RWMutex
	byKey map[domain.IdentityKey]domain.Account
}

func NewRepo() *Repo {
	return &Repo{
		byKey: make(map[domain.IdentityKey]domain.Account),
	}
}

func (r *Repo) Exists(ctx context.Context, key domain.IdentityKey) (bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byKey[key]
	return ok, nil
}

func (r *Repo) Create(ctx context.Context, a domain.Account) error {
	_ = ctx
	if a.IdentityKey == "" {
		return accountdir.ErrAlreadyExists // treat empty key as invalid; app validates before calling
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byKey[a.IdentityKey]; ok {
		return accountdir.ErrAlreadyExists
	}
	r.byKey[a.IdentityKey] = a
	return nil
}

func (r *Repo) Get(ctx context.Context, key domain.IdentityKey) (domain.Account, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byKey[key]
	if !ok {
		return domain.Account{}, accountdir.ErrNotFound
	}
	return a, nil
}
