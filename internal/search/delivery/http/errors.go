package http

import (
	"errors"
	"net/http"

	"review-srv/internal/search"
	pkgErrors "review-srv/pkg/errors"
)

var (
	errWrongQuery = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Wrong query",
	)
	errIndexNotFound = pkgErrors.NewHTTPError(
		http.StatusConflict, "Index does not exist, bootstrap it with POST /admin/index",
	)
	errEngineDown = pkgErrors.NewHTTPError(
		http.StatusServiceUnavailable, "Search engine unavailable",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, search.ErrInvalidParams):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, search.ErrIndexNotFound):
		return errIndexNotFound
	case errors.Is(err, search.ErrUpstreamUnavailable):
		return errEngineDown
	default:
		return err
	}
}
