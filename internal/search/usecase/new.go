package usecase

import (
	"time"

	"review-srv/internal/search"
	"review-srv/internal/search/repository"
	"review-srv/pkg/log"
)

// Config - UseCase tuning
type Config struct {
	AggregationTimeout time.Duration // Deadline for summary and trend calls (default 10s)
}

// DefaultConfig - Default configuration
func DefaultConfig() Config {
	return Config{
		AggregationTimeout: 10 * time.Second,
	}
}

type implUseCase struct {
	repo      repository.Repository
	cacheRepo repository.CacheRepository
	l         log.Logger
	cfg       Config
}

// New - Factory. cacheRepo is optional; nil disables the analytics cache.
func New(
	repo repository.Repository,
	cacheRepo repository.CacheRepository,
	l log.Logger,
	cfg Config,
) search.UseCase {
	if cfg.AggregationTimeout <= 0 {
		cfg.AggregationTimeout = DefaultConfig().AggregationTimeout
	}
	return &implUseCase{
		repo:      repo,
		cacheRepo: cacheRepo,
		l:         l,
		cfg:       cfg,
	}
}
