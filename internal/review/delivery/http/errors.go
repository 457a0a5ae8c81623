package http

import (
	"errors"
	"fmt"
	"net/http"

	"review-srv/internal/review"
	pkgErrors "review-srv/pkg/errors"
)

var (
	errWrongBody     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errDerivedField  = pkgErrors.NewHTTPError(http.StatusBadRequest, "sentiment_label and sentiment_score are derived and cannot be set")
	errNotFound      = pkgErrors.NewHTTPError(http.StatusNotFound, "Review not found")
	errConflict      = pkgErrors.NewHTTPError(http.StatusConflict, "Review id already exists")
	errIndexNotFound = pkgErrors.NewHTTPError(http.StatusConflict, "Index does not exist, bootstrap it with POST /admin/index")
	errEngineDown    = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Search engine unavailable")
)

func nullFieldError(field string) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must not be null, omit it to leave it unchanged", field))
}

func (h handler) mapError(err error) error {
	switch {
	case errors.Is(err, review.ErrValidation):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, review.ErrNotFound):
		return errNotFound
	case errors.Is(err, review.ErrConflict):
		return errConflict
	case errors.Is(err, review.ErrIndexNotFound):
		return errIndexNotFound
	case errors.Is(err, review.ErrUpstreamUnavailable):
		return errEngineDown
	default:
		return err
	}
}
