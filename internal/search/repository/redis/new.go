package redis

import (
	"time"

	"review-srv/internal/search/repository"
	"review-srv/pkg/log"
	pkgRedis "review-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	ttl   time.Duration
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, ttl time.Duration, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		ttl:   ttl,
		l:     l,
	}
}
