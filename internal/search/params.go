package search

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"review-srv/pkg/paginator"
	"review-srv/pkg/sentiment"
)

const (
	minRatingBound = 1
	maxRatingBound = 5
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// RawParams are the untyped query parameters of the search and analytics
// endpoints. Empty strings mean "not provided".
type RawParams struct {
	Q         string
	ProductID string
	MinRating string
	MaxRating string
	Sentiment string
	DateFrom  string
	DateTo    string
	Sort      string
	Page      string
	Size      string
	Interval  string
}

// Filters validates the shared filter parameters.
func (p RawParams) Filters() (Filters, error) {
	f := Filters{
		Query:     strings.TrimSpace(p.Q),
		ProductID: strings.TrimSpace(p.ProductID),
	}

	var err error
	if f.MinRating, err = parseRating("minRating", p.MinRating); err != nil {
		return Filters{}, err
	}
	if f.MaxRating, err = parseRating("maxRating", p.MaxRating); err != nil {
		return Filters{}, err
	}
	if f.MinRating != nil && f.MaxRating != nil && *f.MinRating > *f.MaxRating {
		return Filters{}, fmt.Errorf("%w: minRating (%d) must not exceed maxRating (%d)", ErrInvalidParams, *f.MinRating, *f.MaxRating)
	}

	if s := strings.ToLower(strings.TrimSpace(p.Sentiment)); s != "" {
		if !sentiment.IsLabel(s) {
			return Filters{}, fmt.Errorf("%w: sentiment must be one of %s", ErrInvalidParams, strings.Join(sentiment.Labels, ", "))
		}
		f.Sentiment = s
	}

	if f.DateFrom, err = parseDate("dateFrom", p.DateFrom); err != nil {
		return Filters{}, err
	}
	if f.DateTo, err = parseDate("dateTo", p.DateTo); err != nil {
		return Filters{}, err
	}
	if f.DateFrom != nil && f.DateTo != nil && !f.DateFrom.Before(*f.DateTo) {
		return Filters{}, fmt.Errorf("%w: dateFrom must be before dateTo", ErrInvalidParams)
	}

	return f, nil
}

// SearchInput normalizes the search parameters. page and size are clamped
// into range; non-numeric values are rejected.
func (p RawParams) SearchInput() (SearchInput, error) {
	f, err := p.Filters()
	if err != nil {
		return SearchInput{}, err
	}

	sort := strings.ToLower(strings.TrimSpace(p.Sort))
	if sort == "" {
		sort = DefaultSort
	}
	switch sort {
	case SortRelevance, SortNewest, SortOldest, SortRatingDesc, SortRatingAsc:
	default:
		return SearchInput{}, fmt.Errorf("%w: unknown sort %q", ErrInvalidParams, p.Sort)
	}

	pq := paginator.PaginateQuery{Page: paginator.DefaultPage, Limit: paginator.DefaultLimit}
	if pq.Page, err = parseInt("page", p.Page, paginator.DefaultPage); err != nil {
		return SearchInput{}, err
	}
	if pq.Limit, err = parseInt("size", p.Size, paginator.DefaultLimit); err != nil {
		return SearchInput{}, err
	}
	pq.Adjust()

	return SearchInput{
		Filters:  f,
		Sort:     sort,
		Paginate: pq,
	}, nil
}

func (p RawParams) SummaryInput() (SummaryInput, error) {
	f, err := p.Filters()
	if err != nil {
		return SummaryInput{}, err
	}
	return SummaryInput{Filters: f}, nil
}

func (p RawParams) TrendInput() (TrendInput, error) {
	f, err := p.Filters()
	if err != nil {
		return TrendInput{}, err
	}

	interval := strings.ToLower(strings.TrimSpace(p.Interval))
	if interval == "" {
		interval = DefaultInterval
	}
	switch interval {
	case IntervalDay, IntervalWeek, IntervalMonth:
	default:
		return TrendInput{}, fmt.Errorf("%w: interval must be one of day, week, month", ErrInvalidParams)
	}

	return TrendInput{Filters: f, Interval: interval}, nil
}

func parseRating(name, s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidParams, name, s)
	}
	if v < minRatingBound || v > maxRatingBound {
		return nil, fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidParams, name, minRatingBound, maxRatingBound)
	}
	return &v, nil
}

func parseInt(name, s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidParams, name, s)
	}
	return v, nil
}

// parseDate reads an ISO-8601 timestamp. Values without an offset are UTC.
// A "+" offset decoded from an unescaped query string arrives as a space.
func parseDate(name, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.Contains(s, "T") {
		s = strings.Replace(s, " ", "+", 1)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %q is not an ISO-8601 date", ErrInvalidParams, name, s)
}
