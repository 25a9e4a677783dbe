package query

import "errors"

var (
	// ErrAPIRequired is returned when a backend API is not provided.
	ErrAPIRequired = errors.New("backend API required")
)
