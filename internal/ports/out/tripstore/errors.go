package tripstore

import "errors"

var (
	ErrNotFound    = errors.New("trip not found")
	ErrUnavailable = errors.New("trip store unavailable")
)
