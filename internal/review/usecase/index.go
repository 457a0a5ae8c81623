package usecase

import (
	"context"

	"review-srv/internal/review"
)

func (uc *implUseCase) EnsureIndex(ctx context.Context) (review.EnsureIndexOutput, error) {
	created, err := uc.repo.EnsureIndex(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "review.usecase.EnsureIndex: repo.EnsureIndex: %v", err)
		return review.EnsureIndexOutput{}, mapRepoError(err)
	}

	if created {
		uc.l.Infof(ctx, "review.usecase.EnsureIndex: created index %s", uc.repo.IndexName())
	}
	return review.EnsureIndexOutput{
		Index:   uc.repo.IndexName(),
		Created: created,
	}, nil
}
