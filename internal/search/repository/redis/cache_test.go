package redis

import (
	"context"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	goredis "github.com/redis/go-redis/v9"

	"review-srv/internal/search/repository"
	"review-srv/pkg/log"
	pkgRedis "review-srv/pkg/redis"
)

var _ = Describe("Analytics cache", func() {
	var (
		ctx   context.Context
		mr    *miniredis.Miniredis
		cache repository.CacheRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		mr = miniredis.NewMiniRedis()
		Expect(mr.Start()).To(Succeed())
		DeferCleanup(mr.Close)

		client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
		DeferCleanup(client.Close)
		cache = New(pkgRedis.NewFromClient(client), time.Minute, log.NewNop())
	})

	It("reports a miss for an unknown key", func() {
		_, err := cache.GetAnalytics(ctx, repository.AnalyticsKeyPrefix+"summary:abc")
		Expect(err).To(MatchError(repository.ErrCacheMiss))
	})

	It("stores values with the configured TTL", func() {
		key := repository.AnalyticsKeyPrefix + "summary:abc"
		Expect(cache.SaveAnalytics(ctx, key, []byte(`{"total":1}`))).To(Succeed())

		got, err := cache.GetAnalytics(ctx, key)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(got)).To(Equal(`{"total":1}`))
		Expect(mr.TTL(key)).To(Equal(time.Minute))

		mr.FastForward(2 * time.Minute)
		_, err = cache.GetAnalytics(ctx, key)
		Expect(err).To(MatchError(repository.ErrCacheMiss))
	})

	It("invalidates only analytics keys", func() {
		Expect(cache.SaveAnalytics(ctx, repository.AnalyticsKeyPrefix+"summary:a", []byte("1"))).To(Succeed())
		Expect(cache.SaveAnalytics(ctx, repository.AnalyticsKeyPrefix+"trend:b", []byte("2"))).To(Succeed())
		Expect(mr.Set("other:key", "x")).To(Succeed())

		Expect(cache.InvalidateAnalytics(ctx)).To(Succeed())

		Expect(mr.Exists(repository.AnalyticsKeyPrefix + "summary:a")).To(BeFalse())
		Expect(mr.Exists(repository.AnalyticsKeyPrefix + "trend:b")).To(BeFalse())
		Expect(mr.Exists("other:key")).To(BeTrue())
	})

	It("moves the generation forward on every invalidation", func() {
		gen, err := cache.AnalyticsGeneration(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(gen).To(BeZero())

		Expect(cache.InvalidateAnalytics(ctx)).To(Succeed())
		Expect(cache.InvalidateAnalytics(ctx)).To(Succeed())

		gen, err = cache.AnalyticsGeneration(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(gen).To(Equal(int64(2)))
		Expect(mr.Exists(repository.AnalyticsGenerationKey)).To(BeTrue())
	})

	It("rejects a corrupt generation", func() {
		Expect(mr.Set(repository.AnalyticsGenerationKey, "x")).To(Succeed())
		_, err := cache.AnalyticsGeneration(ctx)
		Expect(err).To(HaveOccurred())
	})

	It("returns backend errors other than a miss", func() {
		mr.SetError("LOADING")
		_, err := cache.GetAnalytics(ctx, repository.AnalyticsKeyPrefix+"summary:x")
		Expect(err).To(HaveOccurred())
		Expect(err).NotTo(MatchError(repository.ErrCacheMiss))
	})
})
