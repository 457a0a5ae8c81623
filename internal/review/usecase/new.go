package usecase

import (
	"review-srv/internal/review"
	"review-srv/internal/review/repository"
	"review-srv/pkg/log"
	"review-srv/pkg/sentiment"
)

// Config - UseCase tuning
type Config struct {
	BulkConcurrency int // Parallel creates per bulk request (default 8)
	BulkMaxItems    int // Max items per bulk request (default 1000)
}

// DefaultConfig - Default configuration
func DefaultConfig() Config {
	return Config{
		BulkConcurrency: 8,
		BulkMaxItems:    1000,
	}
}

type implUseCase struct {
	repo        repository.Repository
	analyzer    sentiment.IAnalyzer
	publisher   review.Publisher
	invalidator review.AnalyticsInvalidator
	l           log.Logger
	cfg         Config
}

// New - Factory. publisher and invalidator are optional.
func New(
	repo repository.Repository,
	analyzer sentiment.IAnalyzer,
	publisher review.Publisher,
	invalidator review.AnalyticsInvalidator,
	l log.Logger,
	cfg Config,
) review.UseCase {
	def := DefaultConfig()
	if cfg.BulkConcurrency <= 0 {
		cfg.BulkConcurrency = def.BulkConcurrency
	}
	if cfg.BulkMaxItems <= 0 {
		cfg.BulkMaxItems = def.BulkMaxItems
	}
	return &implUseCase{
		repo:        repo,
		analyzer:    analyzer,
		publisher:   publisher,
		invalidator: invalidator,
		l:           l,
		cfg:         cfg,
	}
}
