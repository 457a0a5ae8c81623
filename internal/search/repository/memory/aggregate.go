package memory

import (
	"context"
	"sort"
	"time"

	"review-srv/internal/search"
	"review-srv/internal/search/repository"
)

func (r *implRepository) Summary(ctx context.Context, opts repository.SummaryOptions) (search.SummaryOutput, error) {
	if err := ctx.Err(); err != nil {
		return search.SummaryOutput{}, err
	}

	var out search.SummaryOutput
	sum := 0
	for _, h := range r.collect(ctx, opts.Filters) {
		out.Total++
		sum += h.review.Rating
		out.SentimentCounts.Add(h.review.SentimentLabel, 1)
	}
	if out.Total > 0 {
		out.AvgRating = float64(sum) / float64(out.Total)
	}
	return out, nil
}

func (r *implRepository) Trend(ctx context.Context, opts repository.TrendOptions) ([]search.TrendBucket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type acc struct {
		bucket search.TrendBucket
		sum    int
	}
	byStart := map[int64]*acc{}
	for _, h := range r.collect(ctx, opts.Filters) {
		start := bucketStart(h.review.CreatedAt, opts.Interval)
		a, ok := byStart[start.Unix()]
		if !ok {
			a = &acc{bucket: search.TrendBucket{Start: start}}
			byStart[start.Unix()] = a
		}
		a.bucket.Count++
		a.sum += h.review.Rating
		a.bucket.SentimentCounts.Add(h.review.SentimentLabel, 1)
	}

	out := make([]search.TrendBucket, 0, len(byStart))
	for _, a := range byStart {
		a.bucket.AvgRating = float64(a.sum) / float64(a.bucket.Count)
		out = append(out, a.bucket)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// bucketStart truncates t to its UTC calendar bucket. Weeks start on Monday.
func bucketStart(t time.Time, interval string) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch interval {
	case search.IntervalDay:
		return day
	case search.IntervalWeek:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	default:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}
