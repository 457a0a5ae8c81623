package elasticsearch

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig      = errors.New("elasticsearch: invalid configuration")
	ErrUnavailable        = errors.New("elasticsearch: unavailable")
	ErrNotFound           = errors.New("elasticsearch: document not found")
	ErrConflict           = errors.New("elasticsearch: document already exists")
	ErrIndexNotFound      = errors.New("elasticsearch: index not found")
	ErrIndexAlreadyExists = errors.New("elasticsearch: index already exists")
	ErrBadRequest         = errors.New("elasticsearch: bad request")
)

// WrapError wraps an error with additional context
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
