package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"review-srv/internal/review"
	reviewMemory "review-srv/internal/review/repository/memory"
	"review-srv/internal/review/usecase"
	"review-srv/internal/storage/memory"
	"review-srv/pkg/log"
	"review-srv/pkg/sentiment"
)

type recorder struct {
	mu          sync.Mutex
	events      []review.Event
	invalidated int
	publishErr  error
}

func (r *recorder) PublishReviewEvent(_ context.Context, e review.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.publishErr
}

func (r *recorder) InvalidateAnalytics(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidated++
	return nil
}

func (r *recorder) eventTypes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validInput(id string) review.CreateInput {
	return review.CreateInput{
		ID:          id,
		ProductID:   "P1",
		ProductName: "Kettle",
		Rating:      4,
		Title:       "Nice",
		Text:        "Boils fast.",
		CreatedAt:   "2024-01-05T10:00:00Z",
	}
}

var _ = Describe("Review UseCase", func() {
	var (
		ctx      context.Context
		uc       review.UseCase
		rec      *recorder
		analyzer sentiment.IAnalyzer
	)

	BeforeEach(func() {
		ctx = context.Background()
		rec = &recorder{}
		analyzer = sentiment.New()
		repo := reviewMemory.New(memory.NewDriver(), "reviews")
		uc = usecase.New(repo, analyzer, rec, rec, log.NewNop(), usecase.Config{BulkConcurrency: 2, BulkMaxItems: 5})
	})

	Describe("Create", func() {
		DescribeTable("rating bounds",
			func(rating int, ok bool) {
				in := validInput(fmt.Sprintf("r-%d", rating))
				in.Rating = rating
				_, err := uc.Create(ctx, in)
				if ok {
					Expect(err).NotTo(HaveOccurred())
				} else {
					Expect(err).To(MatchError(review.ErrValidation))
				}
			},
			Entry("0 rejected", 0, false),
			Entry("1 accepted", 1, true),
			Entry("3 accepted", 3, true),
			Entry("5 accepted", 5, true),
			Entry("6 rejected", 6, false),
		)

		It("rejects missing required fields", func() {
			for _, mutate := range []func(*review.CreateInput){
				func(in *review.CreateInput) { in.ID = "  " },
				func(in *review.CreateInput) { in.ProductID = "" },
				func(in *review.CreateInput) { in.ProductName = "" },
				func(in *review.CreateInput) { in.CreatedAt = "" },
				func(in *review.CreateInput) { in.CreatedAt = "yesterday" },
			} {
				in := validInput("x")
				mutate(&in)
				_, err := uc.Create(ctx, in)
				Expect(err).To(MatchError(review.ErrValidation))
			}
		})

		It("strips markup before enrichment and storage", func() {
			in := validInput("html")
			in.Text = "<p>Works <b>perfectly</b></p><script>x()</script>"
			rv, err := uc.Create(ctx, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(rv.Text).To(Equal("Works perfectly"))
			Expect(rv.SentimentScore).To(Equal(analyzer.Analyze(rv.Title, rv.Text).Score))
		})

		It("round-trips through Get with consistent sentiment", func() {
			created, err := uc.Create(ctx, validInput("rt"))
			Expect(err).NotTo(HaveOccurred())

			got, err := uc.Get(ctx, "rt")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(created))

			want := analyzer.Analyze(got.Title, got.Text)
			Expect(got.SentimentLabel).To(Equal(want.Label))
			Expect(got.SentimentScore).To(Equal(want.Score))
		})

		It("fails with conflict on a duplicate id", func() {
			_, err := uc.Create(ctx, validInput("dup"))
			Expect(err).NotTo(HaveOccurred())
			_, err = uc.Create(ctx, validInput("dup"))
			Expect(err).To(MatchError(review.ErrConflict))
		})

		It("publishes an event and invalidates analytics", func() {
			_, err := uc.Create(ctx, validInput("ev"))
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.eventTypes()).To(Equal([]string{review.EventCreated}))
			Expect(rec.invalidated).To(Equal(1))
		})

		It("still succeeds when publishing fails", func() {
			rec.publishErr = errors.New("broker down")
			_, err := uc.Create(ctx, validInput("ev2"))
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Update", func() {
		BeforeEach(func() {
			_, err := uc.Create(ctx, review.CreateInput{
				ID:          "r1",
				ProductID:   "P1",
				ProductName: "Widget",
				Rating:      5,
				Title:       "Great",
				Text:        "Works perfectly, excellent quality.",
				CreatedAt:   "2024-01-05T10:00:00Z",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("re-enriches when text changes", func() {
			before, err := uc.Get(ctx, "r1")
			Expect(err).NotTo(HaveOccurred())
			Expect(before.SentimentLabel).To(Equal(sentiment.LabelPositive))

			after, err := uc.Update(ctx, "r1", review.Patch{
				Text:   strPtr("Stopped working after two days. Disappointed."),
				Rating: intPtr(2),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(after.SentimentLabel).To(BeElementOf(sentiment.LabelNegative, sentiment.LabelNeutral))
			Expect(after.SentimentScore).To(BeNumerically("<", before.SentimentScore))
			Expect(after.Rating).To(Equal(2))
			Expect(after.ProductID).To(Equal("P1"))
			Expect(after.Title).To(Equal("Great"))

			want := analyzer.Analyze("Great", "Stopped working after two days. Disappointed.")
			Expect(after.SentimentScore).To(Equal(want.Score))
		})

		It("leaves derived fields untouched when only rating changes", func() {
			before, err := uc.Get(ctx, "r1")
			Expect(err).NotTo(HaveOccurred())

			after, err := uc.Update(ctx, "r1", review.Patch{Rating: intPtr(1)})
			Expect(err).NotTo(HaveOccurred())
			Expect(after.Rating).To(Equal(1))
			Expect(after.SentimentLabel).To(Equal(before.SentimentLabel))
			Expect(after.SentimentScore).To(Equal(before.SentimentScore))
		})

		It("re-enriches against the merged title and text", func() {
			after, err := uc.Update(ctx, "r1", review.Patch{Title: strPtr("Terrible")})
			Expect(err).NotTo(HaveOccurred())
			want := analyzer.Analyze("Terrible", "Works perfectly, excellent quality.")
			Expect(after.SentimentScore).To(Equal(want.Score))
		})

		It("rejects an empty patch", func() {
			_, err := uc.Update(ctx, "r1", review.Patch{})
			Expect(err).To(MatchError(review.ErrValidation))
		})

		It("rejects an out of range rating without applying anything", func() {
			_, err := uc.Update(ctx, "r1", review.Patch{Rating: intPtr(6), Text: strPtr("Awful")})
			Expect(err).To(MatchError(review.ErrValidation))

			got, err := uc.Get(ctx, "r1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Rating).To(Equal(5))
			Expect(got.Text).To(Equal("Works perfectly, excellent quality."))
		})

		It("fails with not found for an unknown id", func() {
			_, err := uc.Update(ctx, "missing", review.Patch{Rating: intPtr(3)})
			Expect(err).To(MatchError(review.ErrNotFound))
		})
	})

	Describe("Get and Delete", func() {
		It("returns not found for an unknown id", func() {
			_, err := uc.Get(ctx, "nope")
			Expect(err).To(MatchError(review.ErrNotFound))
		})

		It("deletes once and reports not found the second time", func() {
			_, err := uc.Create(ctx, validInput("del"))
			Expect(err).NotTo(HaveOccurred())

			Expect(uc.Delete(ctx, "del")).To(Succeed())
			Expect(uc.Delete(ctx, "del")).To(MatchError(review.ErrNotFound))
			_, err = uc.Get(ctx, "del")
			Expect(err).To(MatchError(review.ErrNotFound))
		})
	})

	Describe("BulkCreate", func() {
		It("reports per-item outcomes without aborting the batch", func() {
			bad := validInput("b2")
			bad.Rating = 9
			out, err := uc.BulkCreate(ctx, []review.CreateInput{validInput("b1"), bad, validInput("b3")})
			Expect(err).NotTo(HaveOccurred())

			Expect(out.BatchID).NotTo(BeEmpty())
			Expect(out.Total).To(Equal(3))
			Expect(out.Succeeded).To(Equal(2))
			Expect(out.Failed).To(Equal(1))

			Expect(out.Items[0].Success).To(BeTrue())
			Expect(out.Items[1].Success).To(BeFalse())
			Expect(out.Items[1].Index).To(Equal(1))
			Expect(out.Items[1].ErrorType).To(Equal(review.ErrorTypeValidation))
			Expect(out.Items[2].Success).To(BeTrue())

			for _, id := range []string{"b1", "b3"} {
				_, err := uc.Get(ctx, id)
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(rec.invalidated).To(Equal(1))
		})

		It("fails malformed items as validation errors", func() {
			bad := validInput("m2")
			bad.Malformed = "rating must be int, got string"
			out, err := uc.BulkCreate(ctx, []review.CreateInput{validInput("m1"), bad})
			Expect(err).NotTo(HaveOccurred())

			Expect(out.Succeeded).To(Equal(1))
			Expect(out.Items[1].ID).To(Equal("m2"))
			Expect(out.Items[1].ErrorType).To(Equal(review.ErrorTypeValidation))
			Expect(out.Items[1].ErrorMessage).To(ContainSubstring("rating must be int"))

			_, err = uc.Get(ctx, "m2")
			Expect(err).To(MatchError(review.ErrNotFound))
		})

		It("tags duplicates as conflicts", func() {
			out, err := uc.BulkCreate(ctx, []review.CreateInput{validInput("d1"), validInput("d1")})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Succeeded).To(Equal(1))
			Expect(out.Failed).To(Equal(1))

			var failed review.BulkItemResult
			for _, it := range out.Items {
				if !it.Success {
					failed = it
				}
			}
			Expect(failed.ErrorType).To(Equal(review.ErrorTypeConflict))
		})

		It("rejects empty and oversized batches", func() {
			_, err := uc.BulkCreate(ctx, nil)
			Expect(err).To(MatchError(review.ErrValidation))

			inputs := make([]review.CreateInput, 6)
			for i := range inputs {
				inputs[i] = validInput(fmt.Sprintf("o%d", i))
			}
			_, err = uc.BulkCreate(ctx, inputs)
			Expect(err).To(MatchError(review.ErrValidation))
		})
	})

	Describe("EnsureIndex", func() {
		It("creates once and is a no-op afterwards", func() {
			out, err := uc.EnsureIndex(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(review.EnsureIndexOutput{Index: "reviews", Created: true}))

			out, err = uc.EnsureIndex(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Created).To(BeFalse())
		})
	})
})
