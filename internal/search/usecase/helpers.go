package usecase

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"

	"review-srv/internal/search"
	"review-srv/internal/search/repository"
)

// cacheKey - analytics:<kind>:<generation>:<sha256 of the normalized input>
func cacheKey(kind string, gen int64, input any) string {
	raw, _ := json.Marshal(input)
	hash := sha256.Sum256(raw)
	return fmt.Sprintf("%s%s:%d:%x", repository.AnalyticsKeyPrefix, kind, gen, hash)
}

func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrIndexNotFound):
		return fmt.Errorf("%w: %v", search.ErrIndexNotFound, err)
	case errors.Is(err, repository.ErrBadQuery):
		return fmt.Errorf("%w: %v", search.ErrInvalidParams, err)
	default:
		return fmt.Errorf("%w: %v", search.ErrUpstreamUnavailable, err)
	}
}
