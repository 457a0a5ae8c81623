package memory

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"review-srv/internal/model"
)

var _ = Describe("Driver", func() {
	var (
		d   *Driver
		ctx context.Context
	)

	BeforeEach(func() {
		d = NewDriver()
		ctx = context.Background()
	})

	It("reports index creation once", func() {
		Expect(d.EnsureIndex(ctx, "reviews")).To(BeTrue())
		Expect(d.EnsureIndex(ctx, "reviews")).To(BeFalse())
	})

	It("rejects duplicate ids", func() {
		Expect(d.Create(ctx, model.Review{ID: "r1"})).To(Succeed())
		Expect(d.Create(ctx, model.Review{ID: "r1"})).To(MatchError(ErrConflict))
	})

	It("gets, replaces and deletes", func() {
		Expect(d.Create(ctx, model.Review{ID: "r1", Rating: 5})).To(Succeed())
		Expect(d.Put(ctx, model.Review{ID: "r1", Rating: 2})).To(Succeed())

		r, err := d.Get(ctx, "r1")
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Rating).To(Equal(2))

		Expect(d.Delete(ctx, "r1")).To(Succeed())
		Expect(d.Delete(ctx, "r1")).To(MatchError(ErrNotFound))
		_, err = d.Get(ctx, "r1")
		Expect(err).To(MatchError(ErrNotFound))
	})

	It("lists matching reviews ordered by id", func() {
		for _, id := range []string{"c", "a", "b"} {
			Expect(d.Create(ctx, model.Review{ID: id, Rating: len(id)})).To(Succeed())
		}
		got := d.List(ctx, func(r model.Review) bool { return r.ID != "b" })
		Expect(got).To(HaveLen(2))
		Expect(got[0].ID).To(Equal("a"))
		Expect(got[1].ID).To(Equal("c"))
		Expect(d.Len()).To(Equal(3))
	})
})
