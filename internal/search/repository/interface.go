package repository

import (
	"context"

	"review-srv/internal/search"
)

// Repository runs queries and aggregations against a search backend.
//
//go:generate mockery --name Repository
type Repository interface {
	Search(ctx context.Context, opts SearchOptions) (SearchResult, error)
	Summary(ctx context.Context, opts SummaryOptions) (search.SummaryOutput, error)
	Trend(ctx context.Context, opts TrendOptions) ([]search.TrendBucket, error)
}

// CacheRepository stores serialized analytics results. Entries are keyed by
// the generation read before computing them, and every invalidation moves
// the generation forward, so a result computed before a write is never
// served after it.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	AnalyticsGeneration(ctx context.Context) (int64, error)
	GetAnalytics(ctx context.Context, key string) ([]byte, error)
	SaveAnalytics(ctx context.Context, key string, data []byte) error
	InvalidateAnalytics(ctx context.Context) error
}
