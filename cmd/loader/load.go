package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"review-srv/config"
	configES "review-srv/config/elasticsearch"
	configRedis "review-srv/config/redis"
	"review-srv/internal/review"
	reviewES "review-srv/internal/review/repository/elasticsearch"
	reviewUsecase "review-srv/internal/review/usecase"
	searchRedis "review-srv/internal/search/repository/redis"
	"review-srv/pkg/log"
	"review-srv/pkg/sentiment"
)

const defaultChunkSize = 500

type loaderCommander struct {
	file      string
	chunk     int
	bootstrap bool
}

// record is one element of the input file.
type record struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Rating      int    `json:"rating"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	CreatedAt   string `json:"created_at"`
}

func (r record) toInput() review.CreateInput {
	return review.CreateInput{
		ID:          r.ID,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Rating:      r.Rating,
		Title:       r.Title,
		Text:        r.Text,
		CreatedAt:   r.CreatedAt,
	}
}

// loadStats sums the outcome of every chunk.
type loadStats struct {
	Total     int
	Succeeded int
	Failed    int
}

func (c *loaderCommander) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.SearchEngine.Driver != config.DriverElasticsearch {
		return fmt.Errorf("loader requires the %s driver", config.DriverElasticsearch)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	esClient, err := configES.Connect(cfg.SearchEngine)
	if err != nil {
		return err
	}
	defer configES.Disconnect()

	var invalidator review.AnalyticsInvalidator
	if cfg.Redis.Enabled {
		redisClient, err := configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Warnf(ctx, "Redis unavailable, cached analytics expire by ttl only: %v", err)
		} else {
			defer configRedis.Disconnect()
			invalidator = searchRedis.New(redisClient, cfg.Redis.AnalyticsTTL, logger)
		}
	}

	uc := reviewUsecase.New(reviewES.New(esClient, cfg.SearchEngine.Index, logger), sentiment.New(), nil, invalidator, logger, reviewUsecase.Config{
		BulkConcurrency: cfg.Review.BulkConcurrency,
		BulkMaxItems:    cfg.Review.BulkMaxItems,
	})

	f, err := os.Open(c.file)
	if err != nil {
		return err
	}
	defer f.Close()

	chunk := c.chunk
	if chunk > cfg.Review.BulkMaxItems {
		chunk = cfg.Review.BulkMaxItems
	}

	stats, err := load(ctx, uc, f, chunk, c.bootstrap, os.Stdout)
	if err != nil {
		return err
	}
	logger.Infof(ctx, "Loaded %s: %d total, %d succeeded, %d failed", c.file, stats.Total, stats.Succeeded, stats.Failed)
	return nil
}

// load streams a JSON array from r and creates its reviews chunk by chunk.
// Failed items are written to out.
func load(ctx context.Context, uc review.UseCase, r io.Reader, chunk int, bootstrap bool, out io.Writer) (loadStats, error) {
	if chunk < 1 {
		return loadStats{}, fmt.Errorf("chunk must be at least 1, got %d", chunk)
	}

	if bootstrap {
		res, err := uc.EnsureIndex(ctx)
		if err != nil {
			return loadStats{}, fmt.Errorf("ensure index: %w", err)
		}
		fmt.Fprintf(out, "index %s created=%t\n", res.Index, res.Created)
	}

	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return loadStats{}, fmt.Errorf("read input: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return loadStats{}, fmt.Errorf("input must be a JSON array")
	}

	var (
		stats  loadStats
		batch  = make([]review.CreateInput, 0, chunk)
		offset int
	)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		res, err := uc.BulkCreate(ctx, batch)
		if err != nil {
			return fmt.Errorf("bulk create at offset %d: %w", offset, err)
		}
		stats.Total += res.Total
		stats.Succeeded += res.Succeeded
		stats.Failed += res.Failed
		for _, it := range res.Items {
			if !it.Success {
				fmt.Fprintf(out, "item %d (%s): %s: %s\n", offset+it.Index, it.ID, it.ErrorType, it.ErrorMessage)
			}
		}
		offset += len(batch)
		batch = batch[:0]
		return nil
	}

	for dec.More() {
		var rec record
		if err := dec.Decode(&rec); err != nil {
			return stats, fmt.Errorf("decode item %d: %w", offset+len(batch), err)
		}
		batch = append(batch, rec.toInput())
		if len(batch) == chunk {
			if err := flush(); err != nil {
				return stats, err
			}
		}
	}
	if err := flush(); err != nil {
		return stats, err
	}

	fmt.Fprintf(out, "total=%d succeeded=%d failed=%d\n", stats.Total, stats.Succeeded, stats.Failed)
	return stats, nil
}
