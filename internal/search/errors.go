package search

import "errors"

// Domain errors
var (
	ErrInvalidParams       = errors.New("search: invalid parameters")
	ErrIndexNotFound       = errors.New("search: index not found")
	ErrUpstreamUnavailable = errors.New("search: search engine unavailable")
)
