package elasticsearch

import (
	"context"
	"errors"
	"fmt"

	"review-srv/internal/model"
	"review-srv/internal/review/repository"
	pkgES "review-srv/pkg/elasticsearch"
)

func (r *implRepository) IndexName() string {
	return r.index
}

func (r *implRepository) EnsureIndex(ctx context.Context) (bool, error) {
	exists, err := r.es.IndexExists(ctx, r.index)
	if err != nil {
		r.l.Errorf(ctx, "review.repository.elasticsearch.EnsureIndex: IndexExists failed: %v", err)
		return false, mapError(err)
	}
	if exists {
		return false, nil
	}

	if err := r.es.CreateIndex(ctx, r.index, indexBody()); err != nil {
		// Lost a race with a concurrent bootstrap.
		if errors.Is(err, pkgES.ErrIndexAlreadyExists) {
			return false, nil
		}
		r.l.Errorf(ctx, "review.repository.elasticsearch.EnsureIndex: CreateIndex failed: %v", err)
		return false, mapError(err)
	}
	return true, nil
}

func (r *implRepository) Create(ctx context.Context, rv model.Review) error {
	if err := r.es.CreateDocument(ctx, r.index, rv.ID, rv); err != nil {
		if !errors.Is(err, pkgES.ErrConflict) {
			r.l.Errorf(ctx, "review.repository.elasticsearch.Create: id=%s: %v", rv.ID, err)
		}
		return mapError(err)
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Review, error) {
	src, err := r.es.GetDocument(ctx, r.index, id)
	if err != nil {
		return model.Review{}, mapError(err)
	}

	rv, err := model.NewReviewFromSource(src)
	if err != nil {
		r.l.Errorf(ctx, "review.repository.elasticsearch.Get: decode id=%s: %v", id, err)
		return model.Review{}, fmt.Errorf("%w: decode %s: %v", repository.ErrUnavailable, id, err)
	}
	return rv, nil
}

func (r *implRepository) Replace(ctx context.Context, rv model.Review) error {
	if err := r.es.IndexDocument(ctx, r.index, rv.ID, rv); err != nil {
		r.l.Errorf(ctx, "review.repository.elasticsearch.Replace: id=%s: %v", rv.ID, err)
		return mapError(err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if err := r.es.DeleteDocument(ctx, r.index, id); err != nil {
		return mapError(err)
	}
	return nil
}

// mapError translates client errors into repository errors, keeping the detail.
func mapError(err error) error {
	switch {
	case errors.Is(err, pkgES.ErrNotFound):
		return fmt.Errorf("%w: %v", repository.ErrNotFound, err)
	case errors.Is(err, pkgES.ErrConflict):
		return fmt.Errorf("%w: %v", repository.ErrConflict, err)
	case errors.Is(err, pkgES.ErrIndexNotFound):
		return fmt.Errorf("%w: %v", repository.ErrIndexNotFound, err)
	default:
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
}
