package main

import (
	"context"

	"review-srv/internal/review"
)

// testUseCase counts bulk calls on top of a real usecase.
type testUseCase struct {
	review.UseCase
	bulkCalls int
}

func (u *testUseCase) BulkCreate(ctx context.Context, inputs []review.CreateInput) (review.BulkOutput, error) {
	u.bulkCalls++
	return u.UseCase.BulkCreate(ctx, inputs)
}
