package accounts

import (
	"context"
	"errors"
	"testing"

	memaccountdir "github.com/ontravel-app/travel-journal-api/internal/adapters/memory/accountdir"
	"github.com/ontravel-app/travel-journal-api/internal/domain"
	"github.com/ontravel-app/travel-journal-api/internal/ports/out/accountdir"
)

func TestService_SignUpThenLogIn(t *testing.T) {
	t.Parallel()

	svc := NewService(memaccountdir.NewRepo())

	a, err := svc.SignUp(context.Background(), SignUpInput{
		Name:     "Ana",
		Email:    "a.b@x.com",
		Password: "p1",
	})
	if err != nil {
		t.Fatalf("SignUp err=%v", err)
	}
	if a.IdentityKey != "a,b@x.com" {
		t.Fatalf("identityKey=%q, want a,b@x.com", a.IdentityKey)
	}

	got, err := svc.LogIn(context.Background(), LogInInput{Email: "a.b@x.com", Password: "p1"})
	if err != nil {
		t.Fatalf("LogIn err=%v", err)
	}
	if got.Name != "Ana" || got.Email != "a.b@x.com" {
		t.Fatalf("got=%+v", got)
	}
}

func TestService_LogIn_IsCaseInsensitiveOnEmail(t *testing.T) {
	t.Parallel()

	svc := NewService(memaccountdir.NewRepo())
	if _, err := svc.SignUp(context.Background(), SignUpInput{Name: "Ana", Email: "Ana@X.Com", Password: "p1"}); err != nil {
		t.Fatalf("SignUp err=%v", err)
	}
	if _, err := svc.LogIn(context.Background(), LogInInput{Email: "ANA@x.com", Password: "p1"}); err != nil {
		t.Fatalf("LogIn err=%v", err)
	}
}

func TestService_LogIn_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := NewService(memaccountdir.NewRepo())
	if _, err := svc.SignUp(context.Background(), SignUpInput{Name: "Ana", Email: "a.b@x.com", Password: "p1"}); err != nil {
		t.Fatalf("SignUp err=%v", err)
	}

	_, err := svc.LogIn(context.Background(), LogInInput{Email: "a.b@x.com", Password: "wrong"})
	ae := (*Error)(nil)
	if !errors.As(err, &ae) || ae.Status != 401 || ae.Code != "WRONG_PASSWORD" {
		t.Fatalf("err=%v, want WRONG_PASSWORD 401", err)
	}

	// Passwords compare as exact strings; case matters.
	_, err = svc.LogIn(context.Background(), LogInInput{Email: "a.b@x.com", Password: "P1"})
	if !errors.As(err, &ae) || ae.Code != "WRONG_PASSWORD" {
		t.Fatalf("err=%v, want WRONG_PASSWORD for case-different password", err)
	}
}

func TestService_LogIn_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc := NewService(memaccountdir.NewRepo())
	_, err := svc.LogIn(context.Background(), LogInInput{Email: "missing@x.com", Password: "p1"})
	ae := (*Error)(nil)
	if !errors.As(err, &ae) || ae.Status != 404 || ae.Code != "EMAIL_NOT_FOUND" {
		t.Fatalf("err=%v, want EMAIL_NOT_FOUND 404", err)
	}
}

func TestService_SignUp_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := NewService(memaccountdir.NewRepo())
	in := SignUpInput{Name: "Ana", Email: "ana@x.com", Password: "p1"}
	if _, err := svc.SignUp(context.Background(), in); err != nil {
		t.Fatalf("SignUp err=%v", err)
	}

	_, err := svc.SignUp(context.Background(), in)
	ae := (*Error)(nil)
	if !errors.As(err, &ae) || ae.Status != 409 || ae.Code != "EMAIL_ALREADY_REGISTERED" {
		t.Fatalf("err=%v, want EMAIL_ALREADY_REGISTERED 409", err)
	}

	// Same address with different case derives the same key.
	_, err = svc.SignUp(context.Background(), SignUpInput{Name: "Other", Email: "ANA@X.COM", Password: "p2"})
	if !errors.As(err, &ae) || ae.Code != "EMAIL_ALREADY_REGISTERED" {
		t.Fatalf("err=%v, want EMAIL_ALREADY_REGISTERED for case variant", err)
	}
}

func TestService_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(memaccountdir.NewRepo())
	cases := []struct {
		name string
		in   SignUpInput
	}{
		{"missing name", SignUpInput{Email: "a@x.com", Password: "p"}},
		{"whitespace name", SignUpInput{Name: "   ", Email: "a@x.com", Password: "p"}},
		{"missing email", SignUpInput{Name: "Ana", Password: "p"}},
		{"missing password", SignUpInput{Name: "Ana", Email: "a@x.com"}},
		{"no at sign", SignUpInput{Name: "Ana", Email: "ax.com", Password: "p"}},
		{"no dot after at", SignUpInput{Name: "Ana", Email: "a@xcom", Password: "p"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SignUp(context.Background(), tc.in)
			ae := (*Error)(nil)
			if !errors.As(err, &ae) || ae.Status != 422 || ae.Code != "VALIDATION_ERROR" {
				t.Fatalf("err=%v, want VALIDATION_ERROR 422", err)
			}
		})
	}

	// Validation failures never reach the directory.
	failing := failingDirectory{}
	svcFail := NewService(failing)
	if _, err := svcFail.SignUp(context.Background(), SignUpInput{}); err == nil {
		t.Fatalf("expected validation error")
	} else {
		ae := (*Error)(nil)
		if !errors.As(err, &ae) || ae.Code != "VALIDATION_ERROR" {
			t.Fatalf("err=%v, want local VALIDATION_ERROR without a store call", err)
		}
	}
}

func TestService_StoreUnavailable(t *testing.T) {
	t.Parallel()

	svc := NewService(failingDirectory{})

	_, err := svc.SignUp(context.Background(), SignUpInput{Name: "Ana", Email: "a@x.com", Password: "p"})
	ae := (*Error)(nil)
	if !errors.As(err, &ae) || ae.Status != 503 || ae.Code != "STORE_UNAVAILABLE" {
		t.Fatalf("SignUp err=%v, want STORE_UNAVAILABLE 503", err)
	}

	_, err = svc.LogIn(context.Background(), LogInInput{Email: "a@x.com", Password: "p"})
	if !errors.As(err, &ae) || ae.Code != "STORE_UNAVAILABLE" {
		t.Fatalf("LogIn err=%v, want STORE_UNAVAILABLE", err)
	}
}

// failingDirectory simulates an unreachable store.
type failingDirectory struct{}

func (failingDirectory) Exists(_ context.Context, _ domain.IdentityKey) (bool, error) {
	return false, accountdir.ErrUnavailable
}

func (failingDirectory) Create(_ context.Context, _ domain.Account) error {
	return accountdir.ErrUnavailable
}

func (failingDirectory) Get(_ context.Context, _ domain.IdentityKey) (domain.Account, error) {
	return domain.Account{}, accountdir.ErrUnavailable
}
