package repository

import "errors"

var (
	ErrNotFound      = errors.New("repository: review not found")
	ErrConflict      = errors.New("repository: review already exists")
	ErrIndexNotFound = errors.New("repository: index not found")
	ErrUnavailable   = errors.New("repository: engine unavailable")
)
