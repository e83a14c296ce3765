package accounts

import (
	"context"
	"errors"
	"strings"

	"github.com/ontravel-app/travel-journal-api/internal/domain"
	"github.com/ontravel-app/travel-journal-api/internal/ports/out/accountdir"
)

type Service struct {
	dir accountdir.Directory
}

func NewService(dir accountdir.Directory) *Service {
	return &Service{dir: dir}
}

// SignUp validates the form fields, derives the identity key and creates the
// account.
//
// The existence check and the create are two separate store calls with no
// transaction, so a race between two signups for the same email can let both
// through (last write wins). Adapters that can detect the collision return
// ErrAlreadyExists, but the check-then-create shape itself is kept as-is.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (domain.Account, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || in.Password == "" {
		return domain.Account{}, &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "name, email and password are required",
		}
	}
	if !domain.ValidEmailShape(email) {
		return domain.Account{}, &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid email",
			Details: map[string]any{"email": "must look like local@domain.tld"},
		}
	}

	key := domain.DeriveIdentityKey(email)

	exists, err := s.dir.Exists(ctx, key)
	if err != nil {
		return domain.Account{}, storeError(err)
	}
	if exists {
		return domain.Account{}, &Error{
			Status:  409,
			Code:    "EMAIL_ALREADY_REGISTERED",
			Message: "An account already exists for this email address.",
		}
	}

	a := domain.Account{
		IdentityKey: key,
		Name:        name,
		Email:       email,
		Password:    in.Password,
	}
	if err := s.dir.Create(ctx, a); err != nil {
		if errors.Is(err, accountdir.ErrAlreadyExists) {
			return domain.Account{}, &Error{
				Status:  409,
				Code:    "EMAIL_ALREADY_REGISTERED",
				Message: "An account already exists for this email address.",
			}
		}
		return domain.Account{}, storeError(err)
	}
	return a, nil
}

// LogIn fetches the account at the derived key and compares the stored
// password against the supplied one. The comparison is exact, case-sensitive
// string equality against the plaintext record; see domain.Account.
func (s *Service) LogIn(ctx context.Context, in LogInInput) (domain.Account, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return domain.Account{}, &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "email and password are required",
		}
	}
	if !domain.ValidEmailShape(email) {
		return domain.Account{}, &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid email",
			Details: map[string]any{"email": "must look like local@domain.tld"},
		}
	}

	a, err := s.dir.Get(ctx, domain.DeriveIdentityKey(email))
	if err != nil {
		if errors.Is(err, accountdir.ErrNotFound) {
			return domain.Account{}, &Error{
				Status:  404,
				Code:    "EMAIL_NOT_FOUND",
				Message: "No account exists for this email address.",
			}
		}
		return domain.Account{}, storeError(err)
	}

	if a.Password != in.Password {
		return domain.Account{}, &Error{
			Status:  401,
			Code:    "WRONG_PASSWORD",
			Message: "Wrong password.",
		}
	}
	return a, nil
}

// storeError hides transport detail behind the closed error taxonomy; raw
// store error text never reaches callers.
func storeError(err error) error {
	if errors.Is(err, accountdir.ErrUnavailable) {
		return &Error{
			Status:  503,
			Code:    "STORE_UNAVAILABLE",
			Message: "The account directory is temporarily unavailable.",
		}
	}
	return err
}
