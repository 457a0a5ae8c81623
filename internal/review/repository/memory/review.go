package memory

import (
	"context"
	"errors"
	"fmt"

	"review-srv/internal/model"
	"review-srv/internal/review/repository"
	"review-srv/internal/storage/memory"
)

func (r *implRepository) IndexName() string {
	return r.index
}

func (r *implRepository) EnsureIndex(ctx context.Context) (bool, error) {
	return r.driver.EnsureIndex(ctx, r.index), nil
}

func (r *implRepository) Create(ctx context.Context, rv model.Review) error {
	return mapError(r.driver.Create(ctx, rv))
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Review, error) {
	rv, err := r.driver.Get(ctx, id)
	return rv, mapError(err)
}

func (r *implRepository) Replace(ctx context.Context, rv model.Review) error {
	return mapError(r.driver.Put(ctx, rv))
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	return mapError(r.driver.Delete(ctx, id))
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, memory.ErrNotFound):
		return fmt.Errorf("%w: %v", repository.ErrNotFound, err)
	case errors.Is(err, memory.ErrConflict):
		return fmt.Errorf("%w: %v", repository.ErrConflict, err)
	default:
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
}
