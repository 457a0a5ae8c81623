package elasticsearch

import (
	"context"
	"errors"
	"fmt"

	"review-srv/internal/search"
	"review-srv/internal/search/repository"
	pkgES "review-srv/pkg/elasticsearch"
)

func (r *implRepository) Search(ctx context.Context, opts repository.SearchOptions) (repository.SearchResult, error) {
	res, err := r.es.Search(ctx, r.index, buildSearchBody(opts))
	if err != nil {
		r.l.Errorf(ctx, "search.repository.elasticsearch.Search: %v", err)
		return repository.SearchResult{}, mapError(err)
	}

	out := repository.SearchResult{
		Total: int(res.Hits.Total.Value),
		Items: make([]search.SearchItem, 0, len(res.Hits.Hits)),
	}
	for _, h := range res.Hits.Hits {
		item, err := parseHit(h)
		if err != nil {
			r.l.Errorf(ctx, "search.repository.elasticsearch.Search: %v", err)
			return repository.SearchResult{}, fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func (r *implRepository) Summary(ctx context.Context, opts repository.SummaryOptions) (search.SummaryOutput, error) {
	res, err := r.es.Search(ctx, r.index, buildSummaryBody(opts))
	if err != nil {
		r.l.Errorf(ctx, "search.repository.elasticsearch.Summary: %v", err)
		return search.SummaryOutput{}, mapError(err)
	}

	out, err := parseSummary(res)
	if err != nil {
		r.l.Errorf(ctx, "search.repository.elasticsearch.Summary: %v", err)
		return search.SummaryOutput{}, fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return out, nil
}

func (r *implRepository) Trend(ctx context.Context, opts repository.TrendOptions) ([]search.TrendBucket, error) {
	res, err := r.es.Search(ctx, r.index, buildTrendBody(opts))
	if err != nil {
		r.l.Errorf(ctx, "search.repository.elasticsearch.Trend: %v", err)
		return nil, mapError(err)
	}

	out, err := parseTrend(res)
	if err != nil {
		r.l.Errorf(ctx, "search.repository.elasticsearch.Trend: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return out, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, pkgES.ErrIndexNotFound):
		return fmt.Errorf("%w: %v", repository.ErrIndexNotFound, err)
	case errors.Is(err, pkgES.ErrBadRequest):
		return fmt.Errorf("%w: %v", repository.ErrBadQuery, err)
	default:
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
}
