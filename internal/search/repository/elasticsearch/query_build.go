package elasticsearch

import (
	"time"

	"review-srv/internal/search"
	"review-srv/internal/search/repository"
)

// Named keyword clauses. A hit that did not match fullMatch matched only
// some of the keyword terms.
const (
	fullMatch    = "full_match"
	partialMatch = "partial_match"
)

const (
	fieldProductID = "product_id"
	fieldRating    = "rating"
	fieldTitle     = "title"
	fieldText      = "text"
	fieldCreatedAt = "created_at"
	fieldSentiment = "sentiment_label"
	fieldID        = "id"
)

// maxResultWindow is the engine default for index.max_result_window.
const maxResultWindow = 10000

var keywordFields = []string{fieldText + "^2", fieldTitle}

// buildFilterClauses returns one exact clause per present filter. The
// clauses are ANDed by the enclosing bool.filter.
func buildFilterClauses(f search.Filters) []map[string]any {
	clauses := []map[string]any{}

	if f.ProductID != "" {
		clauses = append(clauses, map[string]any{
			"term": map[string]any{fieldProductID: f.ProductID},
		})
	}
	if f.Sentiment != "" {
		clauses = append(clauses, map[string]any{
			"term": map[string]any{fieldSentiment: f.Sentiment},
		})
	}

	if f.MinRating != nil || f.MaxRating != nil {
		rng := map[string]any{}
		if f.MinRating != nil {
			rng["gte"] = *f.MinRating
		}
		if f.MaxRating != nil {
			rng["lte"] = *f.MaxRating
		}
		clauses = append(clauses, map[string]any{
			"range": map[string]any{fieldRating: rng},
		})
	}

	if f.DateFrom != nil || f.DateTo != nil {
		rng := map[string]any{}
		if f.DateFrom != nil {
			rng["gte"] = f.DateFrom.Format(time.RFC3339Nano)
		}
		if f.DateTo != nil {
			rng["lt"] = f.DateTo.Format(time.RFC3339Nano)
		}
		clauses = append(clauses, map[string]any{
			"range": map[string]any{fieldCreatedAt: rng},
		})
	}

	return clauses
}

// buildKeywordClause matches the keyword over text and title with typo
// tolerance. The AND clause ranks complete matches above partial ones.
func buildKeywordClause(q string) map[string]any {
	multiMatch := func(name, operator string) map[string]any {
		return map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    keywordFields,
				"fuzziness": "AUTO",
				"operator":  operator,
				"_name":     name,
			},
		}
	}

	return map[string]any{
		"bool": map[string]any{
			"should": []map[string]any{
				multiMatch(fullMatch, "and"),
				multiMatch(partialMatch, "or"),
			},
			"minimum_should_match": 1,
		},
	}
}

// buildQuery combines the keyword clause (or match_all) with the filters.
func buildQuery(f search.Filters) map[string]any {
	must := map[string]any{"match_all": map[string]any{}}
	if f.HasQuery() {
		must = buildKeywordClause(f.Query)
	}

	return map[string]any{
		"bool": map[string]any{
			"must":   []map[string]any{must},
			"filter": buildFilterClauses(f),
		},
	}
}

func sortField(field, order string) map[string]any {
	return map[string]any{field: map[string]any{"order": order}}
}

// buildSort ends every sort with id so equal keys page deterministically.
func buildSort(sort string) []map[string]any {
	var out []map[string]any
	switch sort {
	case search.SortRelevance:
		out = append(out, sortField("_score", "desc"), sortField(fieldCreatedAt, "desc"))
	case search.SortOldest:
		out = append(out, sortField(fieldCreatedAt, "asc"))
	case search.SortRatingDesc:
		out = append(out, sortField(fieldRating, "desc"), sortField(fieldCreatedAt, "desc"))
	case search.SortRatingAsc:
		out = append(out, sortField(fieldRating, "asc"), sortField(fieldCreatedAt, "desc"))
	default:
		out = append(out, sortField(fieldCreatedAt, "desc"))
	}
	return append(out, sortField(fieldID, "asc"))
}

func buildHighlight() map[string]any {
	return map[string]any{
		"pre_tags":  []string{"<em>"},
		"post_tags": []string{"</em>"},
		"fields": map[string]any{
			fieldText:  map[string]any{"fragment_size": 160, "number_of_fragments": 3},
			fieldTitle: map[string]any{"fragment_size": 120, "number_of_fragments": 2},
		},
	}
}

// beyondWindow reports whether a page ends past the index's
// max_result_window, which the engine rejects.
func beyondWindow(from, size int) bool {
	return size > maxResultWindow || from > maxResultWindow-size
}

func buildSearchBody(opts repository.SearchOptions) map[string]any {
	from := max(opts.From, 0)
	if beyondWindow(from, opts.Size) {
		return map[string]any{
			"query":            buildQuery(opts.Filters),
			"size":             0,
			"track_total_hits": true,
		}
	}

	body := map[string]any{
		"query":            buildQuery(opts.Filters),
		"sort":             buildSort(opts.Sort),
		"from":             from,
		"size":             opts.Size,
		"track_total_hits": true,
	}
	if opts.Filters.HasQuery() {
		body["highlight"] = buildHighlight()
		body["track_scores"] = true
	}
	return body
}
