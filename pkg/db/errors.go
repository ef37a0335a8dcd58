package db

import "errors"

var (
	// requested record does not exist.
	ErrMissing = errors.New("missing")

	// a uniqueness constraint (email, slug, ...) is violated.
	ErrDuplicate = errors.New("duplicate")
)
