package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"review-srv/internal/review"
	"review-srv/pkg/metrics"
)

// BulkCreate creates every item independently. An item failure is recorded
// in its outcome and never aborts the batch.
func (uc *implUseCase) BulkCreate(ctx context.Context, inputs []review.CreateInput) (review.BulkOutput, error) {
	if len(inputs) == 0 {
		return review.BulkOutput{}, fmt.Errorf("%w: at least one review is required", review.ErrValidation)
	}
	if len(inputs) > uc.cfg.BulkMaxItems {
		return review.BulkOutput{}, fmt.Errorf("%w: at most %d reviews per request, got %d", review.ErrValidation, uc.cfg.BulkMaxItems, len(inputs))
	}

	batchID := uuid.NewString()
	items := make([]review.BulkItemResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.BulkConcurrency)
	for i, in := range inputs {
		g.Go(func() error {
			items[i] = uc.createItem(gctx, i, in)
			return nil
		})
	}
	_ = g.Wait()

	out := review.BulkOutput{
		BatchID: batchID,
		Total:   len(inputs),
		Items:   items,
	}
	for _, it := range items {
		if it.Success {
			out.Succeeded++
		} else {
			out.Failed++
		}
	}
	metrics.ObserveBulk(out.Succeeded, out.Failed)

	if out.Succeeded > 0 {
		uc.invalidateAnalytics(ctx)
	}
	if out.Failed > 0 {
		uc.l.Warnf(ctx, "review.usecase.BulkCreate: batch=%s succeeded=%d failed=%d", batchID, out.Succeeded, out.Failed)
	} else {
		uc.l.Infof(ctx, "review.usecase.BulkCreate: batch=%s succeeded=%d", batchID, out.Succeeded)
	}
	return out, nil
}

func (uc *implUseCase) createItem(ctx context.Context, index int, in review.CreateInput) review.BulkItemResult {
	res := review.BulkItemResult{
		Index: index,
		ID:    strings.TrimSpace(in.ID),
	}

	rv, err := uc.buildReview(in)
	if err == nil {
		if err = uc.repo.Create(ctx, rv); err != nil {
			err = mapRepoError(err)
		}
	}
	if err != nil {
		res.ErrorType = errorType(err)
		res.ErrorMessage = err.Error()
		return res
	}

	uc.afterWrite(ctx, review.EventCreated, rv, false)
	res.Success = true
	return res
}
