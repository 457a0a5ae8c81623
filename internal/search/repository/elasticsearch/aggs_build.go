package elasticsearch

import (
	"review-srv/internal/search/repository"
	"review-srv/pkg/sentiment"
)

const (
	aggAvgRating  = "avg_rating"
	aggSentiments = "sentiments"
	aggTrend      = "trend"
)

// metricAggs is shared by the summary and every trend bucket.
func metricAggs() map[string]any {
	return map[string]any{
		aggAvgRating: map[string]any{
			"avg": map[string]any{"field": fieldRating},
		},
		aggSentiments: map[string]any{
			"terms": map[string]any{"field": fieldSentiment, "size": len(sentiment.Labels)},
		},
	}
}

func buildSummaryBody(opts repository.SummaryOptions) map[string]any {
	return map[string]any{
		"size":             0,
		"track_total_hits": true,
		"query":            buildQuery(opts.Filters),
		"aggs":             metricAggs(),
	}
}

// buildTrendBody buckets by UTC calendar interval. Empty buckets are not
// returned.
func buildTrendBody(opts repository.TrendOptions) map[string]any {
	return map[string]any{
		"size":  0,
		"query": buildQuery(opts.Filters),
		"aggs": map[string]any{
			aggTrend: map[string]any{
				"date_histogram": map[string]any{
					"field":             fieldCreatedAt,
					"calendar_interval": opts.Interval,
					"time_zone":         "UTC",
					"min_doc_count":     1,
				},
				"aggs": metricAggs(),
			},
		},
	}
}
