package ingest

import "errors"

var (
	// ErrAPIRequired is returned when a backend API is not provided.
	ErrAPIRequired = errors.New("backend API required")

	// ErrInvalidPollInterval is returned for a non-positive poll interval.
	ErrInvalidPollInterval = errors.New("poll interval must be positive")

	// ErrInvalidPollTimeout is returned for a non-positive poll timeout.
	ErrInvalidPollTimeout = errors.New("poll timeout must be positive")
)
