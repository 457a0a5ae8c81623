package repository

import (
	"context"

	"review-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// EnsureIndex creates the index and its mapping. created is false when it already existed.
	EnsureIndex(ctx context.Context) (created bool, err error)
	Create(ctx context.Context, r model.Review) error
	Get(ctx context.Context, id string) (model.Review, error)
	Replace(ctx context.Context, r model.Review) error
	Delete(ctx context.Context, id string) error
	IndexName() string
}
