package usecase

import (
	"context"
	"fmt"
	"strings"

	"review-srv/internal/model"
	"review-srv/internal/review"
)

func (uc *implUseCase) Create(ctx context.Context, input review.CreateInput) (model.Review, error) {
	rv, err := uc.buildReview(input)
	if err != nil {
		return model.Review{}, err
	}

	if err := uc.repo.Create(ctx, rv); err != nil {
		uc.l.Errorf(ctx, "review.usecase.Create: repo.Create id=%s: %v", rv.ID, err)
		return model.Review{}, mapRepoError(err)
	}

	uc.afterWrite(ctx, review.EventCreated, rv, true)
	return rv, nil
}

func (uc *implUseCase) Get(ctx context.Context, id string) (model.Review, error) {
	id = strings.TrimSpace(id)
	if err := validateID(id); err != nil {
		return model.Review{}, err
	}

	rv, err := uc.repo.Get(ctx, id)
	if err != nil {
		return model.Review{}, mapRepoError(err)
	}
	return rv, nil
}

// Update is a read-modify-write. Two concurrent updates of the same id may
// interleave; the last replace wins.
func (uc *implUseCase) Update(ctx context.Context, id string, patch review.Patch) (model.Review, error) {
	id = strings.TrimSpace(id)
	if err := validateID(id); err != nil {
		return model.Review{}, err
	}
	if patch.IsEmpty() {
		return model.Review{}, fmt.Errorf("%w: no fields to update", review.ErrValidation)
	}

	current, err := uc.repo.Get(ctx, id)
	if err != nil {
		return model.Review{}, mapRepoError(err)
	}

	merged, err := uc.applyPatch(current, patch)
	if err != nil {
		return model.Review{}, err
	}

	if err := uc.repo.Replace(ctx, merged); err != nil {
		uc.l.Errorf(ctx, "review.usecase.Update: repo.Replace id=%s: %v", id, err)
		return model.Review{}, mapRepoError(err)
	}

	uc.afterWrite(ctx, review.EventUpdated, merged, true)
	return merged, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := validateID(id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}

	uc.afterWrite(ctx, review.EventDeleted, model.Review{ID: id}, true)
	return nil
}
