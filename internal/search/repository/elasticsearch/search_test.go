package elasticsearch

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"review-srv/internal/search"
	"review-srv/internal/search/repository"
	pkgES "review-srv/pkg/elasticsearch"
	"review-srv/pkg/elasticsearch/estest"
	"review-srv/pkg/log"
)

var _ = Describe("Search repository", func() {
	var (
		ctx     context.Context
		tr      *estest.Transport
		repo    repository.Repository
		handler estest.HandlerFunc
	)

	BeforeEach(func() {
		ctx = context.Background()
		handler = nil
		tr = estest.New(func(req *http.Request, body []byte) (*http.Response, error) {
			return handler(req, body)
		})
		client, err := pkgES.NewElasticsearch(pkgES.Config{
			Addresses: []string{"http://es.test:9200"},
			Transport: tr,
		})
		Expect(err).NotTo(HaveOccurred())
		repo = New(client, "reviews", log.NewNop())
	})

	Describe("Search", func() {
		It("maps hits, highlights and partial matches", func() {
			handler = func(*http.Request, []byte) (*http.Response, error) {
				return estest.Respond(http.StatusOK, `{
					"hits": {
						"total": {"value": 42, "relation": "eq"},
						"hits": [
							{"_id": "r1", "_score": 3.2, "matched_queries": ["full_match", "partial_match"],
							 "highlight": {"text": ["great <em>battery</em> life"]},
							 "_source": {"id": "r1", "product_id": "P1", "product_name": "Phone", "rating": 5,
							             "title": "Good", "text": "great battery life", "created_at": "2024-01-05T10:00:00Z",
							             "sentiment_label": "positive", "sentiment_score": 0.8}},
							{"_id": "r2", "_score": 1.1, "matched_queries": ["partial_match"],
							 "_source": {"id": "r2", "product_id": "P1", "product_name": "Phone", "rating": 2,
							             "title": "", "text": "battery died", "created_at": "2024-01-06T10:00:00Z",
							             "sentiment_label": "negative", "sentiment_score": -0.4}}
						]
					}
				}`), nil
			}

			out, err := repo.Search(ctx, repository.SearchOptions{
				Filters: search.Filters{Query: "battery life"},
				Sort:    search.SortRelevance,
				Size:    10,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(tr.Last().Path).To(Equal("/reviews/_search"))
			Expect(out.Total).To(Equal(42))
			Expect(out.Items).To(HaveLen(2))

			first := out.Items[0]
			Expect(first.Review.ID).To(Equal("r1"))
			Expect(first.Review.CreatedAt).To(BeTemporally("==", time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)))
			Expect(*first.Score).To(BeNumerically("~", 3.2))
			Expect(first.Highlights).To(HaveKeyWithValue("text", ConsistOf("great <em>battery</em> life")))
			Expect(first.Partial).To(BeFalse())
			Expect(out.Items[1].Partial).To(BeTrue())
		})

		It("returns the total without items for an offset past the result window", func() {
			handler = func(*http.Request, []byte) (*http.Response, error) {
				return estest.Respond(http.StatusOK, `{"hits": {"total": {"value": 25000, "relation": "eq"}, "hits": []}}`), nil
			}

			out, err := repo.Search(ctx, repository.SearchOptions{Sort: search.SortNewest, From: math.MaxInt, Size: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Total).To(Equal(25000))
			Expect(out.Items).To(BeEmpty())

			var sent map[string]any
			Expect(json.Unmarshal(tr.Last().Body, &sent)).To(Succeed())
			Expect(sent).To(HaveKeyWithValue("size", BeNumerically("==", 0)))
			Expect(sent).NotTo(HaveKey("from"))
		})

		It("maps a missing index", func() {
			handler = func(*http.Request, []byte) (*http.Response, error) {
				return estest.Respond(http.StatusNotFound, estest.ErrorBody(404, "index_not_found_exception", "no such index [reviews]")), nil
			}
			_, err := repo.Search(ctx, repository.SearchOptions{Size: 10})
			Expect(err).To(MatchError(repository.ErrIndexNotFound))
		})

		It("maps engine failures to unavailable", func() {
			handler = func(*http.Request, []byte) (*http.Response, error) {
				return estest.Respond(http.StatusServiceUnavailable, estest.ErrorBody(503, "cluster_block_exception", "blocked")), nil
			}
			_, err := repo.Search(ctx, repository.SearchOptions{Size: 10})
			Expect(err).To(MatchError(repository.ErrUnavailable))
		})
	})

	Describe("Summary", func() {
		It("fills every sentiment label", func() {
			handler = func(*http.Request, []byte) (*http.Response, error) {
				return estest.Respond(http.StatusOK, `{
					"hits": {"total": {"value": 3, "relation": "eq"}, "hits": []},
					"aggregations": {
						"avg_rating": {"value": 3.6666},
						"sentiments": {"buckets": [{"key": "positive", "doc_count": 2}, {"key": "negative", "doc_count": 1}]}
					}
				}`), nil
			}

			out, err := repo.Summary(ctx, repository.SummaryOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Total).To(Equal(3))
			Expect(out.AvgRating).To(BeNumerically("~", 3.6666))
			Expect(out.SentimentCounts).To(Equal(search.SentimentCounts{Positive: 2, Negative: 1, Neutral: 0}))
		})

		It("reports a zero average on an empty match set", func() {
			handler = func(*http.Request, []byte) (*http.Response, error) {
				return estest.Respond(http.StatusOK, `{
					"hits": {"total": {"value": 0, "relation": "eq"}, "hits": []},
					"aggregations": {"avg_rating": {"value": null}, "sentiments": {"buckets": []}}
				}`), nil
			}

			out, err := repo.Summary(ctx, repository.SummaryOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(search.SummaryOutput{}))
		})
	})

	Describe("Trend", func() {
		It("converts bucket keys to UTC starts", func() {
			jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
			handler = func(*http.Request, []byte) (*http.Response, error) {
				return estest.Respond(http.StatusOK, map[string]any{
					"hits": map[string]any{"total": map[string]any{"value": 3}, "hits": []any{}},
					"aggregations": map[string]any{
						"trend": map[string]any{"buckets": []any{
							map[string]any{"key": jan.UnixMilli(), "doc_count": 2,
								"avg_rating": map[string]any{"value": 4.5},
								"sentiments": map[string]any{"buckets": []any{map[string]any{"key": "positive", "doc_count": 2}}}},
							map[string]any{"key": feb.UnixMilli(), "doc_count": 1,
								"avg_rating": map[string]any{"value": 1.0},
								"sentiments": map[string]any{"buckets": []any{map[string]any{"key": "negative", "doc_count": 1}}}},
						}},
					},
				}), nil
			}

			buckets, err := repo.Trend(ctx, repository.TrendOptions{Interval: search.IntervalMonth})
			Expect(err).NotTo(HaveOccurred())
			Expect(buckets).To(HaveLen(2))
			Expect(buckets[0].Start).To(BeTemporally("==", jan))
			Expect(buckets[0].Count).To(Equal(2))
			Expect(buckets[0].SentimentCounts.Positive).To(Equal(2))
			Expect(buckets[1].Start).To(BeTemporally("==", feb))
			Expect(buckets[1].AvgRating).To(BeNumerically("~", 1.0))
		})

		It("fails when the aggregation is missing", func() {
			handler = func(*http.Request, []byte) (*http.Response, error) {
				return estest.Respond(http.StatusOK, `{"hits": {"total": {"value": 0}, "hits": []}}`), nil
			}
			_, err := repo.Trend(ctx, repository.TrendOptions{Interval: search.IntervalDay})
			Expect(err).To(MatchError(repository.ErrUnavailable))
		})
	})
})
