package elasticsearch

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"review-srv/internal/model"
	"review-srv/internal/search"
	pkgES "review-srv/pkg/elasticsearch"
)

type avgAgg struct {
	Value *float64 `json:"value"`
}

type termsAgg struct {
	Buckets []struct {
		Key      string `json:"key"`
		DocCount int    `json:"doc_count"`
	} `json:"buckets"`
}

type histogramAgg struct {
	Buckets []struct {
		Key        int64    `json:"key"`
		DocCount   int      `json:"doc_count"`
		AvgRating  avgAgg   `json:"avg_rating"`
		Sentiments termsAgg `json:"sentiments"`
	} `json:"buckets"`
}

func parseHit(h pkgES.Hit) (search.SearchItem, error) {
	rv, err := model.NewReviewFromSource(h.Source)
	if err != nil {
		return search.SearchItem{}, fmt.Errorf("decode hit %s: %w", h.ID, err)
	}
	if rv.ID == "" {
		rv.ID = h.ID
	}

	item := search.SearchItem{
		Review:     rv,
		Score:      h.Score,
		Highlights: h.Highlight,
	}
	if len(h.MatchedQueries) > 0 {
		item.Partial = !slices.Contains(h.MatchedQueries, fullMatch)
	}
	return item, nil
}

// avgOrZero avoids NaN and null on an empty match set.
func avgOrZero(a avgAgg) float64 {
	if a.Value == nil {
		return 0
	}
	return *a.Value
}

func sentimentCounts(t termsAgg) search.SentimentCounts {
	var out search.SentimentCounts
	for _, b := range t.Buckets {
		out.Add(b.Key, b.DocCount)
	}
	return out
}

func decodeAgg(aggs map[string]json.RawMessage, name string, v any) error {
	raw, ok := aggs[name]
	if !ok {
		return fmt.Errorf("aggregation %q missing from response", name)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode aggregation %q: %w", name, err)
	}
	return nil
}

func parseSummary(res *pkgES.SearchResponse) (search.SummaryOutput, error) {
	out := search.SummaryOutput{Total: int(res.Hits.Total.Value)}

	var avg avgAgg
	if err := decodeAgg(res.Aggregations, aggAvgRating, &avg); err != nil {
		return search.SummaryOutput{}, err
	}
	var terms termsAgg
	if err := decodeAgg(res.Aggregations, aggSentiments, &terms); err != nil {
		return search.SummaryOutput{}, err
	}

	if out.Total > 0 {
		out.AvgRating = avgOrZero(avg)
	}
	out.SentimentCounts = sentimentCounts(terms)
	return out, nil
}

func parseTrend(res *pkgES.SearchResponse) ([]search.TrendBucket, error) {
	var hist histogramAgg
	if err := decodeAgg(res.Aggregations, aggTrend, &hist); err != nil {
		return nil, err
	}

	out := make([]search.TrendBucket, 0, len(hist.Buckets))
	for _, b := range hist.Buckets {
		if b.DocCount == 0 {
			continue
		}
		out = append(out, search.TrendBucket{
			Start:           time.UnixMilli(b.Key).UTC(),
			Count:           b.DocCount,
			AvgRating:       avgOrZero(b.AvgRating),
			SentimentCounts: sentimentCounts(b.Sentiments),
		})
	}
	return out, nil
}
