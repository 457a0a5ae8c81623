package repository

import "review-srv/internal/search"

const (
	// AnalyticsKeyPrefix is shared by every analytics cache entry.
	AnalyticsKeyPrefix = "analytics:"
	// AnalyticsGenerationKey counts invalidations. It sits outside the entry
	// prefix so dropping entries keeps it.
	AnalyticsGenerationKey = "analytics-generation"
)

// SearchOptions - Options for Search. Sort is already resolved, relevance is
// only passed with a keyword.
type SearchOptions struct {
	Filters search.Filters
	Sort    string
	From    int
	Size    int
}

// SearchResult - Total is exact.
type SearchResult struct {
	Total int
	Items []search.SearchItem
}

type SummaryOptions struct {
	Filters search.Filters
}

type TrendOptions struct {
	Filters  search.Filters
	Interval string
}
