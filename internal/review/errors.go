package review

import "errors"

// Domain errors
var (
	ErrValidation          = errors.New("review: validation failed")
	ErrNotFound            = errors.New("review: not found")
	ErrConflict            = errors.New("review: id already exists")
	ErrIndexNotFound       = errors.New("review: index not found")
	ErrUpstreamUnavailable = errors.New("review: search engine unavailable")
)
