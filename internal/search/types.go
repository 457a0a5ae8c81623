package search

import (
	"time"

	"review-srv/internal/model"
	"review-srv/pkg/paginator"
	"review-srv/pkg/sentiment"
)

// Sort modes
const (
	SortRelevance  = "relevance"
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortRatingDesc = "rating_desc"
	SortRatingAsc  = "rating_asc"
)

// Trend intervals
const (
	IntervalDay   = "day"
	IntervalWeek  = "week"
	IntervalMonth = "month"
)

const (
	DefaultSort     = SortRelevance
	DefaultInterval = IntervalMonth
)

// Filters is the predicate shared by search, summary and trends. Nil or
// empty fields are not applied. DateFrom is inclusive, DateTo exclusive.
type Filters struct {
	Query     string
	ProductID string
	MinRating *int
	MaxRating *int
	Sentiment string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// HasQuery reports whether a non-blank keyword is present.
func (f Filters) HasQuery() bool {
	return f.Query != ""
}

type SearchInput struct {
	Filters
	Sort     string
	Paginate paginator.PaginateQuery
}

// SearchItem is one hit. Score is nil when the engine did not score the hit.
// Partial is true when only some keyword terms matched.
type SearchItem struct {
	Review     model.Review
	Score      *float64
	Highlights map[string][]string
	Partial    bool
}

type SearchOutput struct {
	Total     int
	Items     []SearchItem
	Paginator paginator.Paginator
}

// SentimentCounts always carries the three labels.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Add increments the counter of label by n. Unknown labels are ignored.
func (s *SentimentCounts) Add(label string, n int) {
	switch label {
	case sentiment.LabelPositive:
		s.Positive += n
	case sentiment.LabelNegative:
		s.Negative += n
	case sentiment.LabelNeutral:
		s.Neutral += n
	}
}

type SummaryInput struct {
	Filters
}

type SummaryOutput struct {
	Total           int             `json:"total"`
	AvgRating       float64         `json:"avg_rating"`
	SentimentCounts SentimentCounts `json:"sentiment_counts"`
}

type TrendInput struct {
	Filters
	Interval string
}

type TrendBucket struct {
	Start           time.Time       `json:"start"`
	Count           int             `json:"count"`
	AvgRating       float64         `json:"avg_rating"`
	SentimentCounts SentimentCounts `json:"sentiment_counts"`
}

type TrendOutput struct {
	Interval string        `json:"interval"`
	Buckets  []TrendBucket `json:"buckets"`
}
