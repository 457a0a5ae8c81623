package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"review-srv/internal/model"
	"review-srv/internal/review"
	"review-srv/internal/review/repository"
	"review-srv/pkg/htmltext"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// enrich sets the derived sentiment fields from the current title and text.
// Every write path goes through here.
func (uc *implUseCase) enrich(rv *model.Review) {
	res := uc.analyzer.Analyze(rv.Title, rv.Text)
	rv.SentimentLabel = res.Label
	rv.SentimentScore = res.Score
}

// buildReview validates input and returns the cleaned, enriched record.
func (uc *implUseCase) buildReview(input review.CreateInput) (model.Review, error) {
	if input.Malformed != "" {
		return model.Review{}, fmt.Errorf("%w: %s", review.ErrValidation, input.Malformed)
	}
	id := strings.TrimSpace(input.ID)
	if err := validateID(id); err != nil {
		return model.Review{}, err
	}
	productID := strings.TrimSpace(input.ProductID)
	if productID == "" {
		return model.Review{}, fmt.Errorf("%w: product_id is required", review.ErrValidation)
	}
	productName := strings.TrimSpace(input.ProductName)
	if productName == "" {
		return model.Review{}, fmt.Errorf("%w: product_name is required", review.ErrValidation)
	}
	if err := validateRating(input.Rating); err != nil {
		return model.Review{}, err
	}
	if strings.TrimSpace(input.CreatedAt) == "" {
		return model.Review{}, fmt.Errorf("%w: created_at is required", review.ErrValidation)
	}
	createdAt, err := parseTime(input.CreatedAt)
	if err != nil {
		return model.Review{}, err
	}

	rv := model.Review{
		ID:          id,
		ProductID:   productID,
		ProductName: productName,
		Rating:      input.Rating,
		Title:       htmltext.Clean(input.Title),
		Text:        htmltext.Clean(input.Text),
		CreatedAt:   createdAt,
	}
	uc.enrich(&rv)
	return rv, nil
}

// applyPatch merges the provided fields into rv. Derived fields are
// recomputed only when the patch carries title or text.
func (uc *implUseCase) applyPatch(rv model.Review, p review.Patch) (model.Review, error) {
	if p.ProductID != nil {
		v := strings.TrimSpace(*p.ProductID)
		if v == "" {
			return model.Review{}, fmt.Errorf("%w: product_id must not be empty", review.ErrValidation)
		}
		rv.ProductID = v
	}
	if p.ProductName != nil {
		v := strings.TrimSpace(*p.ProductName)
		if v == "" {
			return model.Review{}, fmt.Errorf("%w: product_name must not be empty", review.ErrValidation)
		}
		rv.ProductName = v
	}
	if p.Rating != nil {
		if err := validateRating(*p.Rating); err != nil {
			return model.Review{}, err
		}
		rv.Rating = *p.Rating
	}
	if p.CreatedAt != nil {
		t, err := parseTime(*p.CreatedAt)
		if err != nil {
			return model.Review{}, err
		}
		rv.CreatedAt = t
	}
	if p.Title != nil {
		rv.Title = htmltext.Clean(*p.Title)
	}
	if p.Text != nil {
		rv.Text = htmltext.Clean(*p.Text)
	}

	if p.TouchesContent() {
		uc.enrich(&rv)
	}
	return rv, nil
}

func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", review.ErrValidation)
	}
	if len(id) > review.MaxIDBytes {
		return fmt.Errorf("%w: id must be at most %d bytes", review.ErrValidation, review.MaxIDBytes)
	}
	return nil
}

func validateRating(r int) error {
	if r < review.MinRating || r > review.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d, got %d", review.ErrValidation, review.MinRating, review.MaxRating, r)
	}
	return nil
}

// parseTime accepts RFC 3339 (offset kept), a local datetime or a date. The
// last two are read as UTC.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: created_at %q is not an ISO-8601 timestamp", review.ErrValidation, s)
}

// mapRepoError converts repository errors into domain errors.
func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %v", review.ErrNotFound, err)
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%w: %v", review.ErrConflict, err)
	case errors.Is(err, repository.ErrIndexNotFound):
		return fmt.Errorf("%w: %v", review.ErrIndexNotFound, err)
	default:
		return fmt.Errorf("%w: %v", review.ErrUpstreamUnavailable, err)
	}
}

// afterWrite publishes the event and drops cached analytics. Failures are
// logged, the write already happened.
func (uc *implUseCase) afterWrite(ctx context.Context, eventType string, rv model.Review, invalidate bool) {
	if uc.publisher != nil {
		if err := uc.publisher.PublishReviewEvent(ctx, review.Event{Type: eventType, Review: rv}); err != nil {
			uc.l.Warnf(ctx, "review.usecase.afterWrite: publish %s id=%s failed: %v", eventType, rv.ID, err)
		}
	}
	if invalidate {
		uc.invalidateAnalytics(ctx)
	}
}

func (uc *implUseCase) invalidateAnalytics(ctx context.Context) {
	if uc.invalidator == nil {
		return
	}
	if err := uc.invalidator.InvalidateAnalytics(ctx); err != nil {
		uc.l.Warnf(ctx, "review.usecase.invalidateAnalytics: %v", err)
	}
}

// errorType classifies a failed bulk item.
func errorType(err error) string {
	switch {
	case errors.Is(err, review.ErrValidation):
		return review.ErrorTypeValidation
	case errors.Is(err, review.ErrConflict):
		return review.ErrorTypeConflict
	default:
		return review.ErrorTypeUpstreamUnavailable
	}
}
