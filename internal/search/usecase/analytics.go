package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"review-srv/internal/search"
	"review-srv/internal/search/repository"
)

const (
	kindSummary = "summary"
	kindTrend   = "trend"
)

func (uc *implUseCase) Summary(ctx context.Context, input search.SummaryInput) (search.SummaryOutput, error) {
	key, cached := uc.analyticsKey(ctx, kindSummary, input)

	var out search.SummaryOutput
	if cached && uc.loadCached(ctx, key, &out) {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.AggregationTimeout)
	defer cancel()

	out, err := uc.repo.Summary(ctx, repository.SummaryOptions{Filters: input.Filters})
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Summary: repo.Summary: %v", err)
		return search.SummaryOutput{}, mapRepoError(err)
	}

	if cached {
		uc.storeCached(ctx, key, out)
	}
	return out, nil
}

func (uc *implUseCase) Trend(ctx context.Context, input search.TrendInput) (search.TrendOutput, error) {
	if input.Interval == "" {
		input.Interval = search.DefaultInterval
	}
	key, cached := uc.analyticsKey(ctx, kindTrend, input)

	var out search.TrendOutput
	if cached && uc.loadCached(ctx, key, &out) {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.AggregationTimeout)
	defer cancel()

	buckets, err := uc.repo.Trend(ctx, repository.TrendOptions{
		Filters:  input.Filters,
		Interval: input.Interval,
	})
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Trend: repo.Trend: %v", err)
		return search.TrendOutput{}, mapRepoError(err)
	}
	if buckets == nil {
		buckets = []search.TrendBucket{}
	}

	out = search.TrendOutput{
		Interval: input.Interval,
		Buckets:  buckets,
	}
	if cached {
		uc.storeCached(ctx, key, out)
	}
	return out, nil
}

// analyticsKey reads the cache generation before the backend is queried. It
// reports false when there is no usable cache.
func (uc *implUseCase) analyticsKey(ctx context.Context, kind string, input any) (string, bool) {
	if uc.cacheRepo == nil {
		return "", false
	}
	gen, err := uc.cacheRepo.AnalyticsGeneration(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "search.usecase.analyticsKey: %v", err)
		return "", false
	}
	return cacheKey(kind, gen, input), true
}

// loadCached decodes a cached value into v. Any failure is a miss.
func (uc *implUseCase) loadCached(ctx context.Context, key string, v any) bool {
	data, err := uc.cacheRepo.GetAnalytics(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "search.usecase.loadCached: %v", err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		uc.l.Warnf(ctx, "search.usecase.loadCached: decode %s: %v", key, err)
		return false
	}
	return true
}

func (uc *implUseCase) storeCached(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		uc.l.Warnf(ctx, "search.usecase.storeCached: encode %s: %v", key, err)
		return
	}
	if err := uc.cacheRepo.SaveAnalytics(ctx, key, data); err != nil {
		uc.l.Warnf(ctx, "search.usecase.storeCached: %v", err)
	}
}
