package memory

import (
	"cmp"
	"context"
	"slices"

	"review-srv/internal/model"
	"review-srv/internal/search"
	"review-srv/internal/search/repository"
)

type scored struct {
	review model.Review
	match  keywordMatch
}

func (r *implRepository) collect(ctx context.Context, f search.Filters) []scored {
	var out []scored
	for _, rv := range r.driver.List(ctx, func(rv model.Review) bool { return matchFilters(f, rv) }) {
		if !f.HasQuery() {
			out = append(out, scored{review: rv})
			continue
		}
		if m, ok := matchKeyword(f.Query, rv); ok {
			out = append(out, scored{review: rv, match: m})
		}
	}
	return out
}

func (r *implRepository) Search(ctx context.Context, opts repository.SearchOptions) (repository.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return repository.SearchResult{}, err
	}

	hits := r.collect(ctx, opts.Filters)
	slices.SortStableFunc(hits, compareBy(opts.Sort))

	out := repository.SearchResult{
		Total: len(hits),
		Items: []search.SearchItem{},
	}
	from := max(opts.From, 0)
	if from >= len(hits) || opts.Size <= 0 {
		return out, nil
	}
	end := from + min(opts.Size, len(hits)-from)
	for _, h := range hits[from:end] {
		item := search.SearchItem{Review: h.review}
		if opts.Filters.HasQuery() {
			score := h.match.score
			item.Score = &score
			item.Highlights = h.match.highlights
			item.Partial = !h.match.full
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

// compareBy orders hits like the engine sort: the mode's key, then newest,
// then id.
func compareBy(sort string) func(a, b scored) int {
	newest := func(a, b scored) int { return b.review.CreatedAt.Compare(a.review.CreatedAt) }
	byID := func(a, b scored) int { return cmp.Compare(a.review.ID, b.review.ID) }

	var primary func(a, b scored) int
	switch sort {
	case search.SortRelevance:
		primary = func(a, b scored) int { return cmp.Compare(b.match.score, a.match.score) }
	case search.SortOldest:
		primary = func(a, b scored) int { return a.review.CreatedAt.Compare(b.review.CreatedAt) }
	case search.SortRatingDesc:
		primary = func(a, b scored) int { return cmp.Compare(b.review.Rating, a.review.Rating) }
	case search.SortRatingAsc:
		primary = func(a, b scored) int { return cmp.Compare(a.review.Rating, b.review.Rating) }
	default:
		primary = newest
	}

	return func(a, b scored) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		if c := newest(a, b); c != 0 {
			return c
		}
		return byID(a, b)
	}
}
