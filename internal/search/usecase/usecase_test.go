package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	goredis "github.com/redis/go-redis/v9"

	"review-srv/internal/model"
	"review-srv/internal/search"
	"review-srv/internal/search/repository"
	searchMemory "review-srv/internal/search/repository/memory"
	searchRedis "review-srv/internal/search/repository/redis"
	"review-srv/internal/search/usecase"
	"review-srv/internal/storage/memory"
	"review-srv/pkg/log"
	"review-srv/pkg/paginator"
	pkgRedis "review-srv/pkg/redis"
)

// stubRepo records what the usecase asks of the backend.
type stubRepo struct {
	searchOpts    repository.SearchOptions
	summaryCtx    context.Context
	summaryHits   int
	duringSummary func() // runs while a summary is being computed
	err           error
}

func (s *stubRepo) Search(_ context.Context, opts repository.SearchOptions) (repository.SearchResult, error) {
	s.searchOpts = opts
	return repository.SearchResult{}, s.err
}

func (s *stubRepo) Summary(ctx context.Context, _ repository.SummaryOptions) (search.SummaryOutput, error) {
	s.summaryCtx = ctx
	s.summaryHits++
	if s.duringSummary != nil {
		s.duringSummary()
	}
	return search.SummaryOutput{Total: s.summaryHits}, s.err
}

func (s *stubRepo) Trend(context.Context, repository.TrendOptions) ([]search.TrendBucket, error) {
	return nil, s.err
}

var _ = Describe("Search UseCase", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("with a stub backend", func() {
		var (
			stub *stubRepo
			uc   search.UseCase
		)

		BeforeEach(func() {
			stub = &stubRepo{}
			uc = usecase.New(stub, nil, log.NewNop(), usecase.Config{AggregationTimeout: 3 * time.Second})
		})

		DescribeTable("resolves the sort mode",
			func(q, sort, want string) {
				_, err := uc.Search(ctx, search.SearchInput{
					Filters:  search.Filters{Query: q},
					Sort:     sort,
					Paginate: paginator.PaginateQuery{Page: 1, Limit: 10},
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(stub.searchOpts.Sort).To(Equal(want))
			},
			Entry("relevance with keyword", "battery", search.SortRelevance, search.SortRelevance),
			Entry("relevance without keyword", "", search.SortRelevance, search.SortNewest),
			Entry("default with keyword", "battery", "", search.SortRelevance),
			Entry("default without keyword", "", "", search.SortNewest),
			Entry("explicit oldest", "battery", search.SortOldest, search.SortOldest),
		)

		It("computes the offset from page and size", func() {
			_, err := uc.Search(ctx, search.SearchInput{Paginate: paginator.PaginateQuery{Page: 3, Limit: 25}})
			Expect(err).NotTo(HaveOccurred())
			Expect(stub.searchOpts.From).To(Equal(50))
			Expect(stub.searchOpts.Size).To(Equal(25))
		})

		It("clamps out of range pagination", func() {
			out, err := uc.Search(ctx, search.SearchInput{Paginate: paginator.PaginateQuery{Page: 0, Limit: 1000}})
			Expect(err).NotTo(HaveOccurred())
			Expect(stub.searchOpts.From).To(Equal(0))
			Expect(stub.searchOpts.Size).To(Equal(100))
			Expect(out.Paginator.PerPage).To(Equal(100))
		})

		It("runs aggregations under a deadline", func() {
			_, err := uc.Summary(ctx, search.SummaryInput{})
			Expect(err).NotTo(HaveOccurred())
			deadline, ok := stub.summaryCtx.Deadline()
			Expect(ok).To(BeTrue())
			Expect(time.Until(deadline)).To(BeNumerically("<=", 3*time.Second))
		})

		DescribeTable("maps backend errors",
			func(repoErr, want error) {
				stub.err = fmt.Errorf("%w: boom", repoErr)
				_, err := uc.Search(ctx, search.SearchInput{Paginate: paginator.PaginateQuery{Page: 1, Limit: 10}})
				Expect(err).To(MatchError(want))
				_, err = uc.Trend(ctx, search.TrendInput{})
				Expect(err).To(MatchError(want))
			},
			Entry("missing index", repository.ErrIndexNotFound, search.ErrIndexNotFound),
			Entry("unavailable", repository.ErrUnavailable, search.ErrUpstreamUnavailable),
			Entry("rejected query", repository.ErrBadQuery, search.ErrInvalidParams),
			Entry("deadline", context.DeadlineExceeded, search.ErrUpstreamUnavailable),
		)
	})

	Describe("with the memory backend", func() {
		var (
			driver *memory.Driver
			uc     search.UseCase
		)

		BeforeEach(func() {
			driver = memory.NewDriver()
			for i := 0; i < 25; i++ {
				label := "positive"
				if i%3 == 0 {
					label = "negative"
				}
				Expect(driver.Create(ctx, model.Review{
					ID:             fmt.Sprintf("r%02d", i),
					ProductID:      []string{"X", "Y"}[i%2],
					Rating:         1 + i%5,
					Text:           "battery review",
					SentimentLabel: label,
					CreatedAt:      time.Date(2024, time.Month(1+i%3), 1+i, 0, 0, 0, 0, time.UTC),
				})).To(Succeed())
			}
			uc = usecase.New(searchMemory.New(driver), nil, log.NewNop(), usecase.DefaultConfig())
		})

		It("sums page sizes to the total and returns an empty page past the end", func() {
			first, err := uc.Search(ctx, search.SearchInput{Paginate: paginator.PaginateQuery{Page: 1, Limit: 10}})
			Expect(err).NotTo(HaveOccurred())
			total := first.Total
			Expect(total).To(Equal(25))

			sum := 0
			for page := 1; page <= 3; page++ {
				out, err := uc.Search(ctx, search.SearchInput{Paginate: paginator.PaginateQuery{Page: page, Limit: 10}})
				Expect(err).NotTo(HaveOccurred())
				Expect(out.Total).To(Equal(total))
				sum += len(out.Items)
			}
			Expect(sum).To(Equal(total))

			past, err := uc.Search(ctx, search.SearchInput{Paginate: paginator.PaginateQuery{Page: 4, Limit: 10}})
			Expect(err).NotTo(HaveOccurred())
			Expect(past.Items).To(BeEmpty())
			Expect(past.Total).To(Equal(total))
			Expect(past.Paginator.ToResponse().HasNext).To(BeFalse())
		})

		It("returns an empty page for the largest page number", func() {
			in, err := search.RawParams{Page: "9223372036854775807", Size: "10"}.SearchInput()
			Expect(err).NotTo(HaveOccurred())

			out, err := uc.Search(ctx, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Items).To(BeEmpty())
			Expect(out.Total).To(Equal(25))
			Expect(out.Paginator.CurrentPage).To(Equal(paginator.MaxPage))
		})

		It("orders newest first when relevance has no keyword", func() {
			out, err := uc.Search(ctx, search.SearchInput{Sort: search.SortRelevance, Paginate: paginator.PaginateQuery{Page: 1, Limit: 100}})
			Expect(err).NotTo(HaveOccurred())
			for i := 1; i < len(out.Items); i++ {
				Expect(out.Items[i-1].Review.CreatedAt).To(BeTemporally(">=", out.Items[i].Review.CreatedAt))
			}
		})

		It("applies the same filters to summary and search", func() {
			f := search.Filters{ProductID: "X", MinRating: ptr(3)}
			s, err := uc.Search(ctx, search.SearchInput{Filters: f, Paginate: paginator.PaginateQuery{Page: 1, Limit: 100}})
			Expect(err).NotTo(HaveOccurred())
			sum, err := uc.Summary(ctx, search.SummaryInput{Filters: f})
			Expect(err).NotTo(HaveOccurred())

			Expect(sum.Total).To(Equal(s.Total))
			Expect(sum.SentimentCounts.Positive + sum.SentimentCounts.Negative + sum.SentimentCounts.Neutral).To(Equal(sum.Total))
		})

		It("defaults trends to monthly buckets", func() {
			out, err := uc.Trend(ctx, search.TrendInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Interval).To(Equal(search.IntervalMonth))
			Expect(out.Buckets).NotTo(BeEmpty())
			for _, b := range out.Buckets {
				Expect(b.Start.Day()).To(Equal(1))
			}
		})
	})

	Describe("with the analytics cache", func() {
		var (
			mr    *miniredis.Miniredis
			stub  *stubRepo
			cache repository.CacheRepository
			uc    search.UseCase
		)

		BeforeEach(func() {
			mr = miniredis.NewMiniRedis()
			Expect(mr.Start()).To(Succeed())
			DeferCleanup(mr.Close)
			client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
			DeferCleanup(client.Close)

			stub = &stubRepo{}
			cache = searchRedis.New(pkgRedis.NewFromClient(client), time.Minute, log.NewNop())
			uc = usecase.New(stub, cache, log.NewNop(), usecase.DefaultConfig())
		})

		It("serves repeated summaries from the cache until invalidated", func() {
			first, err := uc.Summary(ctx, search.SummaryInput{})
			Expect(err).NotTo(HaveOccurred())
			second, err := uc.Summary(ctx, search.SummaryInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
			Expect(stub.summaryHits).To(Equal(1))

			Expect(cache.InvalidateAnalytics(ctx)).To(Succeed())
			_, err = uc.Summary(ctx, search.SummaryInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(stub.summaryHits).To(Equal(2))
		})

		It("never serves a summary computed before a concurrent write", func() {
			stub.duringSummary = func() {
				Expect(cache.InvalidateAnalytics(ctx)).To(Succeed())
				stub.duringSummary = nil
			}

			stale, err := uc.Summary(ctx, search.SummaryInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(stale.Total).To(Equal(1))

			fresh, err := uc.Summary(ctx, search.SummaryInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(fresh.Total).To(Equal(2))

			again, err := uc.Summary(ctx, search.SummaryInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(fresh))
			Expect(stub.summaryHits).To(Equal(2))
		})

		It("keys entries by filters", func() {
			_, err := uc.Summary(ctx, search.SummaryInput{Filters: search.Filters{ProductID: "X"}})
			Expect(err).NotTo(HaveOccurred())
			_, err = uc.Summary(ctx, search.SummaryInput{Filters: search.Filters{ProductID: "Y"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(stub.summaryHits).To(Equal(2))
		})

		It("falls through to the backend when the cache fails", func() {
			mr.SetError("LOADING")
			_, err := uc.Summary(ctx, search.SummaryInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(stub.summaryHits).To(Equal(1))
		})

		It("does not cache failures", func() {
			stub.err = errors.New("down")
			_, err := uc.Summary(ctx, search.SummaryInput{})
			Expect(err).To(HaveOccurred())
			Expect(mr.Keys()).To(BeEmpty())
		})
	})
})

func ptr(i int) *int { return &i }
