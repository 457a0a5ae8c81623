package memory

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"review-srv/internal/model"
	"review-srv/internal/search"
	"review-srv/internal/search/repository"
	"review-srv/internal/storage/memory"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func intPtr(i int) *int { return &i }

var _ = Describe("Memory search repository", func() {
	var (
		ctx    context.Context
		driver *memory.Driver
		repo   repository.Repository
	)

	put := func(rv model.Review) {
		Expect(driver.Create(ctx, rv)).To(Succeed())
	}

	BeforeEach(func() {
		ctx = context.Background()
		driver = memory.NewDriver()
		repo = New(driver)
	})

	Describe("Search", func() {
		It("returns only records matching every filter", func() {
			for i, c := range []struct {
				product string
				rating  int
			}{
				{"X", 5}, {"X", 4}, {"X", 3}, {"Y", 5}, {"Y", 1}, {"X", 1},
			} {
				put(model.Review{ID: fmt.Sprintf("r%d", i), ProductID: c.product, Rating: c.rating, CreatedAt: day(2024, 1, i+1)})
			}

			out, err := repo.Search(ctx, repository.SearchOptions{
				Filters: search.Filters{ProductID: "X", MinRating: intPtr(4)},
				Sort:    search.SortNewest,
				Size:    10,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Total).To(Equal(2))
			for _, it := range out.Items {
				Expect(it.Review.ProductID).To(Equal("X"))
				Expect(it.Review.Rating).To(BeNumerically(">=", 4))
			}
		})

		It("pages through every match exactly once", func() {
			const n = 37
			for i := 0; i < n; i++ {
				put(model.Review{ID: fmt.Sprintf("r%02d", i), Rating: 1 + i%5, CreatedAt: day(2024, 1, 1).Add(time.Duration(i%7) * time.Hour)})
			}

			seen := map[string]bool{}
			sum := 0
			for page := 1; ; page++ {
				out, err := repo.Search(ctx, repository.SearchOptions{Sort: search.SortRatingDesc, From: (page - 1) * 10, Size: 10})
				Expect(err).NotTo(HaveOccurred())
				Expect(out.Total).To(Equal(n))
				if len(out.Items) == 0 {
					break
				}
				sum += len(out.Items)
				for _, it := range out.Items {
					Expect(seen).NotTo(HaveKey(it.Review.ID))
					seen[it.Review.ID] = true
				}
			}
			Expect(sum).To(Equal(n))

			out, err := repo.Search(ctx, repository.SearchOptions{From: 100, Size: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Items).To(BeEmpty())
			Expect(out.Total).To(Equal(n))
		})

		It("handles saturated and negative offsets", func() {
			for i := 0; i < 3; i++ {
				put(model.Review{ID: fmt.Sprintf("r%d", i), CreatedAt: time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC)})
			}

			out, err := repo.Search(ctx, repository.SearchOptions{From: math.MaxInt, Size: math.MaxInt})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Items).To(BeEmpty())
			Expect(out.Total).To(Equal(3))

			out, err = repo.Search(ctx, repository.SearchOptions{From: -5, Size: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Items).To(HaveLen(2))
			Expect(out.Total).To(Equal(3))
		})

		It("excludes the upper date bound", func() {
			put(model.Review{ID: "a", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)})
			put(model.Review{ID: "b", CreatedAt: time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)})
			from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

			out, err := repo.Search(ctx, repository.SearchOptions{Filters: search.Filters{DateFrom: &from, DateTo: &to}, Size: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Items).To(HaveLen(1))
			Expect(out.Items[0].Review.ID).To(Equal("b"))
		})

		It("matches keywords with typos and diacritics and ranks full matches first", func() {
			put(model.Review{ID: "full", Title: "Battery", Text: "Great battery life on this café phone", CreatedAt: day(2024, 1, 1)})
			put(model.Review{ID: "partial", Text: "Battery died quickly", CreatedAt: day(2024, 1, 2)})
			put(model.Review{ID: "none", Text: "Screen is sharp", CreatedAt: day(2024, 1, 3)})

			out, err := repo.Search(ctx, repository.SearchOptions{
				Filters: search.Filters{Query: "batery life cafe"},
				Sort:    search.SortRelevance,
				Size:    10,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Total).To(Equal(2))

			Expect(out.Items[0].Review.ID).To(Equal("full"))
			Expect(out.Items[0].Partial).To(BeFalse())
			Expect(out.Items[0].Score).NotTo(BeNil())
			Expect(out.Items[0].Highlights["text"]).To(ConsistOf(
				"Great <em>battery</em> <em>life</em> on this <em>café</em> phone"))
			Expect(out.Items[0].Highlights["title"]).To(ConsistOf("<em>Battery</em>"))

			Expect(out.Items[1].Review.ID).To(Equal("partial"))
			Expect(out.Items[1].Partial).To(BeTrue())
			Expect(*out.Items[1].Score).To(BeNumerically("<", *out.Items[0].Score))
		})

		It("leaves score and highlights empty without a keyword", func() {
			put(model.Review{ID: "a", Text: "anything", CreatedAt: day(2024, 1, 1)})
			out, err := repo.Search(ctx, repository.SearchOptions{Sort: search.SortNewest, Size: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Items[0].Score).To(BeNil())
			Expect(out.Items[0].Highlights).To(BeEmpty())
		})
	})

	Describe("Summary", func() {
		It("returns zeros on an empty set", func() {
			out, err := repo.Summary(ctx, repository.SummaryOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(search.SummaryOutput{}))
		})

		It("averages ratings and counts every label", func() {
			put(model.Review{ID: "a", Rating: 5, SentimentLabel: "positive"})
			put(model.Review{ID: "b", Rating: 4, SentimentLabel: "positive"})
			put(model.Review{ID: "c", Rating: 1, SentimentLabel: "negative"})

			out, err := repo.Summary(ctx, repository.SummaryOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Total).To(Equal(3))
			Expect(out.AvgRating).To(BeNumerically("~", 10.0/3.0, 1e-9))
			Expect(out.SentimentCounts).To(Equal(search.SentimentCounts{Positive: 2, Negative: 1}))
		})
	})

	Describe("Trend", func() {
		It("groups by calendar month and omits empty months", func() {
			put(model.Review{ID: "a", Rating: 5, SentimentLabel: "positive", CreatedAt: day(2024, 1, 5)})
			put(model.Review{ID: "b", Rating: 3, SentimentLabel: "neutral", CreatedAt: day(2024, 1, 28)})
			put(model.Review{ID: "c", Rating: 1, SentimentLabel: "negative", CreatedAt: day(2024, 2, 1)})
			put(model.Review{ID: "d", Rating: 2, SentimentLabel: "negative", CreatedAt: day(2024, 4, 10)})

			buckets, err := repo.Trend(ctx, repository.TrendOptions{Interval: search.IntervalMonth})
			Expect(err).NotTo(HaveOccurred())
			Expect(buckets).To(HaveLen(3))

			Expect(buckets[0].Start).To(Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
			Expect(buckets[0].Count).To(Equal(2))
			Expect(buckets[0].AvgRating).To(BeNumerically("~", 4.0))
			Expect(buckets[0].SentimentCounts).To(Equal(search.SentimentCounts{Positive: 1, Neutral: 1}))

			Expect(buckets[1].Start).To(Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
			Expect(buckets[2].Start).To(Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
		})
	})

	DescribeTable("bucketStart",
		func(t time.Time, interval string, want time.Time) {
			Expect(bucketStart(t, interval)).To(Equal(want))
		},
		Entry("day", time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC), search.IntervalDay, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		Entry("week from Wednesday", time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC), search.IntervalWeek, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		Entry("week from Sunday", time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC), search.IntervalWeek, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		Entry("week from Monday", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), search.IntervalWeek, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)),
		Entry("month in UTC", time.Date(2024, 2, 1, 1, 0, 0, 0, time.FixedZone("CET", 3600*2)), search.IntervalMonth, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	)

	DescribeTable("fuzzyEqual",
		func(term, word string, want bool) {
			Expect(fuzzyEqual(term, word)).To(Equal(want))
		},
		Entry("exact short", "ok", "ok", true),
		Entry("short needs exact", "ok", "on", false),
		Entry("one edit", "batery", "battery", true),
		Entry("two edits on long terms", "excelent", "excellant", true),
		Entry("too far", "cat", "dog", false),
		Entry("mid term allows one edit only", "phone", "phne", true),
		Entry("mid term rejects two edits", "phone", "pone!!", false),
		Entry("long term allows two deletions", "keyboard", "keybrd", true),
		Entry("long term rejects three edits", "keyboard", "kybrd", false),
		Entry("counts runes not bytes", "tiếng", "tieng", true),
	)

	Describe("highlight", func() {
		It("starts the snippet on a word after multibyte symbols", func() {
			s := strings.Repeat("★", 40) + "battery lasts"
			ws := words(s)
			Expect(ws).To(HaveLen(2))

			got := highlight(s, ws, map[int]struct{}{0: {}}, 160)
			Expect(utf8.ValidString(got)).To(BeTrue())
			Expect(got).To(Equal("<em>battery</em> lasts"))
		})

		It("keeps every snippet valid UTF-8", func() {
			for n := 0; n <= 80; n++ {
				s := strings.Repeat("★", n) + "battery " + strings.Repeat("é", n)
				got := highlight(s, words(s), map[int]struct{}{0: {}}, 160)
				Expect(utf8.ValidString(got)).To(BeTrue(), "prefix of %d symbols", n)
				Expect(got).To(ContainSubstring("<em>battery</em>"))
			}
		})
	})
})
