package usecase

import (
	"context"

	"review-srv/internal/search"
	"review-srv/internal/search/repository"
	"review-srv/pkg/paginator"
)

// Search runs a filtered, sorted, paginated keyword search.
// Relevance without a keyword falls back to newest.
func (uc *implUseCase) Search(ctx context.Context, input search.SearchInput) (search.SearchOutput, error) {
	pq := input.Paginate
	pq.Adjust()

	sort := input.Sort
	if sort == "" {
		sort = search.DefaultSort
	}
	if sort == search.SortRelevance && !input.HasQuery() {
		sort = search.SortNewest
	}

	res, err := uc.repo.Search(ctx, repository.SearchOptions{
		Filters: input.Filters,
		Sort:    sort,
		From:    pq.Offset(),
		Size:    pq.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Search: repo.Search: %v", err)
		return search.SearchOutput{}, mapRepoError(err)
	}

	return search.SearchOutput{
		Total: res.Total,
		Items: res.Items,
		Paginator: paginator.Paginator{
			Total:       int64(res.Total),
			Count:       len(res.Items),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		},
	}, nil
}
