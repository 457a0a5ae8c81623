package repository

import "errors"

var (
	ErrIndexNotFound = errors.New("repository: index not found")
	ErrUnavailable   = errors.New("repository: engine unavailable")
	ErrBadQuery      = errors.New("repository: query rejected by engine")
	ErrCacheMiss     = errors.New("repository: cache miss")
)
