package review

import (
	"context"

	"review-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.Review, error)
	Get(ctx context.Context, id string) (model.Review, error)
	Update(ctx context.Context, id string, patch Patch) (model.Review, error)
	Delete(ctx context.Context, id string) error
	BulkCreate(ctx context.Context, inputs []CreateInput) (BulkOutput, error)
	EnsureIndex(ctx context.Context) (EnsureIndexOutput, error)
}

// Publisher emits review lifecycle events.
type Publisher interface {
	PublishReviewEvent(ctx context.Context, event Event) error
}

// AnalyticsInvalidator drops cached analytics after a write.
type AnalyticsInvalidator interface {
	InvalidateAnalytics(ctx context.Context) error
}
