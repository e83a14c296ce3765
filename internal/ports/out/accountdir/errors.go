package accountdir

import "errors"

var (
	// ErrNotFound indicates no account exists at the requested identity key.
	ErrNotFound = errors.New("account not found")

	// ErrAlreadyExists indicates an account already exists at the identity key.
	ErrAlreadyExists = errors.New("account already exists")

	// ErrUnavailable indicates the backing store could not be reached.
	ErrUnavailable = errors.New("account directory unavailable")
)
