package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"review-srv/internal/search/repository"
	"review-srv/pkg/metrics"
)

const cacheName = "analytics"

func (r *implCacheRepository) GetAnalytics(ctx context.Context, key string) ([]byte, error) {
	data, err := r.redis.Get(ctx, key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			metrics.ObserveCache(cacheName, metrics.CacheMiss)
			return nil, repository.ErrCacheMiss
		}
		r.l.Warnf(ctx, "search.repository.redis.GetAnalytics: key=%s: %v", key, err)
		return nil, err
	}

	metrics.ObserveCache(cacheName, metrics.CacheHit)
	return []byte(data), nil
}

func (r *implCacheRepository) SaveAnalytics(ctx context.Context, key string, data []byte) error {
	if err := r.redis.Set(ctx, key, data, r.ttl); err != nil {
		r.l.Errorf(ctx, "search.repository.redis.SaveAnalytics: Failed to save to cache: %v", err)
		return err
	}
	metrics.ObserveCache(cacheName, metrics.CacheSet)
	return nil
}

// AnalyticsGeneration returns the current generation. It is 0 until the
// first invalidation.
func (r *implCacheRepository) AnalyticsGeneration(ctx context.Context) (int64, error) {
	data, err := r.redis.Get(ctx, repository.AnalyticsGenerationKey)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		r.l.Warnf(ctx, "search.repository.redis.AnalyticsGeneration: %v", err)
		return 0, err
	}
	gen, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		r.l.Warnf(ctx, "search.repository.redis.AnalyticsGeneration: bad value %q: %v", data, err)
		return 0, fmt.Errorf("analytics generation: %w", err)
	}
	return gen, nil
}

// InvalidateAnalytics moves the generation forward, then drops every cached
// summary and trend.
func (r *implCacheRepository) InvalidateAnalytics(ctx context.Context) error {
	if _, err := r.redis.Incr(ctx, repository.AnalyticsGenerationKey); err != nil {
		r.l.Errorf(ctx, "search.repository.redis.InvalidateAnalytics: Incr: %v", err)
		return fmt.Errorf("invalidate analytics cache: %w", err)
	}

	n, err := r.redis.DeleteByPattern(ctx, repository.AnalyticsKeyPrefix+"*")
	if err != nil {
		r.l.Errorf(ctx, "search.repository.redis.InvalidateAnalytics: %v", err)
		return fmt.Errorf("invalidate analytics cache: %w", err)
	}
	if n > 0 {
		metrics.ObserveCache(cacheName, metrics.CacheInvalidate)
		r.l.Debugf(ctx, "search.repository.redis.InvalidateAnalytics: removed %d keys", n)
	}
	return nil
}
