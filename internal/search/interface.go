package search

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
	Summary(ctx context.Context, input SummaryInput) (SummaryOutput, error)
	Trend(ctx context.Context, input TrendInput) (TrendOutput, error)
}
