package firebasedb

import (
	"context"
	"fmt"

	"github.com/ontravel-app/travel-journal-api/internal/domain"
	"github.com/ontravel-app/travel-journal-api/internal/ports/out/accountdir"
)

// accountRecord is the /users/{identityKey} node shape written by the app.
type accountRecord struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountDirectory implements accountdir.Directory against /users nodes.
type AccountDirectory struct {
	c *Client
}

func NewAccountDirectory(c *Client) *AccountDirectory {
	return &AccountDirectory{c: c}
}

func (d *AccountDirectory) Exists(ctx context.Context, key domain.IdentityKey) (bool, error) {
	var rec accountRecord
	found, err := d.c.Read(ctx, userPath(key), &rec)
	if err != nil {
		return false, unavailable(accountdir.ErrUnavailable, err)
	}
	return found, nil
}

// Create checks for an existing record and then writes. The two calls are
// not atomic; the RTDB offers no uniqueness primitive at this layout, so a
// concurrent duplicate signup ends as last write wins.
func (d *AccountDirectory) Create(ctx context.Context, a domain.Account) error {
	found, err := d.Exists(ctx, a.IdentityKey)
	if err != nil {
		return err
	}
	if found {
		return accountdir.ErrAlreadyExists
	}
	rec := accountRecord{Name: a.Name, Email: a.Email, Password: a.Password}
	if err := d.c.Write(ctx, userPath(a.IdentityKey), rec); err != nil {
		return unavailable(accountdir.ErrUnavailable, err)
	}
	return nil
}

func (d *AccountDirectory) Get(ctx context.Context, key domain.IdentityKey) (domain.Account, error) {
	var rec accountRecord
	found, err := d.c.Read(ctx, userPath(key), &rec)
	if err != nil {
		return domain.Account{}, unavailable(accountdir.ErrUnavailable, err)
	}
	if !found {
		return domain.Account{}, accountdir.ErrNotFound
	}
	return domain.Account{
		IdentityKey: key,
		Name:        rec.Name,
		Email:       rec.Email,
		Password:    rec.Password,
	}, nil
}

func userPath(key domain.IdentityKey) string {
	return "users/" + string(key)
}

func unavailable(sentinel error, err error) error {
	return fmt.Errorf("%w: %v", sentinel, err)
}
