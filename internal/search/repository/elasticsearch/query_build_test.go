package elasticsearch

import (
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"review-srv/internal/search"
	"review-srv/internal/search/repository"
)

// roundTrip renders a body the way the client sends it.
func roundTrip(v any) map[string]any {
	raw, err := json.Marshal(v)
	Expect(err).NotTo(HaveOccurred())
	var out map[string]any
	Expect(json.Unmarshal(raw, &out)).To(Succeed())
	return out
}

func intPtr(i int) *int { return &i }

var _ = Describe("Query builder", func() {
	Describe("buildFilterClauses", func() {
		It("returns no clauses without filters", func() {
			Expect(buildFilterClauses(search.Filters{})).To(BeEmpty())
		})

		It("emits one clause per present filter", func() {
			from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
			clauses := buildFilterClauses(search.Filters{
				ProductID: "P1",
				Sentiment: "positive",
				MinRating: intPtr(4),
				DateFrom:  &from,
				DateTo:    &to,
			})

			Expect(clauses).To(HaveLen(4))
			Expect(clauses[0]).To(Equal(map[string]any{"term": map[string]any{"product_id": "P1"}}))
			Expect(clauses[1]).To(Equal(map[string]any{"term": map[string]any{"sentiment_label": "positive"}}))
			Expect(clauses[2]).To(Equal(map[string]any{"range": map[string]any{"rating": map[string]any{"gte": 4}}}))
			Expect(clauses[3]).To(Equal(map[string]any{"range": map[string]any{"created_at": map[string]any{
				"gte": "2024-01-01T00:00:00Z",
				"lt":  "2024-02-01T00:00:00Z",
			}}}))
		})
	})

	Describe("buildSearchBody", func() {
		It("uses match_all and no highlight without a keyword", func() {
			body := roundTrip(buildSearchBody(repository.SearchOptions{Sort: search.SortNewest, From: 20, Size: 10}))

			Expect(body).To(HaveKeyWithValue("from", BeNumerically("==", 20)))
			Expect(body).To(HaveKeyWithValue("size", BeNumerically("==", 10)))
			Expect(body).To(HaveKeyWithValue("track_total_hits", true))
			Expect(body).NotTo(HaveKey("highlight"))
			Expect(body).NotTo(HaveKey("track_scores"))

			must := body["query"].(map[string]any)["bool"].(map[string]any)["must"].([]any)
			Expect(must).To(ConsistOf(HaveKey("match_all")))
		})

		It("asks only for the total past the result window", func() {
			body := roundTrip(buildSearchBody(repository.SearchOptions{
				Filters: search.Filters{Query: "battery"},
				Sort:    search.SortRelevance,
				From:    9995,
				Size:    10,
			}))

			Expect(body).To(HaveKeyWithValue("size", BeNumerically("==", 0)))
			Expect(body).To(HaveKeyWithValue("track_total_hits", true))
			Expect(body).To(HaveKey("query"))
			Expect(body).NotTo(HaveKey("from"))
			Expect(body).NotTo(HaveKey("sort"))
			Expect(body).NotTo(HaveKey("highlight"))
		})

		It("keeps the last page inside the window", func() {
			body := roundTrip(buildSearchBody(repository.SearchOptions{From: 9990, Size: 10}))
			Expect(body).To(HaveKeyWithValue("from", BeNumerically("==", 9990)))
			Expect(body).To(HaveKeyWithValue("size", BeNumerically("==", 10)))
		})

		It("treats a negative offset as the first page", func() {
			body := roundTrip(buildSearchBody(repository.SearchOptions{From: -10, Size: 10}))
			Expect(body).To(HaveKeyWithValue("from", BeNumerically("==", 0)))
		})

		It("builds fuzzy full and partial keyword clauses with highlights", func() {
			body := roundTrip(buildSearchBody(repository.SearchOptions{
				Filters: search.Filters{Query: "battery life", ProductID: "P1"},
				Sort:    search.SortRelevance,
				Size:    10,
			}))

			Expect(body).To(HaveKeyWithValue("highlight", HaveKeyWithValue("fields", And(HaveKey("text"), HaveKey("title")))))
			Expect(body).To(HaveKeyWithValue("track_scores", true))

			boolQ := body["query"].(map[string]any)["bool"].(map[string]any)
			Expect(boolQ["filter"]).To(HaveLen(1))

			keyword := boolQ["must"].([]any)[0].(map[string]any)["bool"].(map[string]any)
			Expect(keyword).To(HaveKeyWithValue("minimum_should_match", BeNumerically("==", 1)))
			should := keyword["should"].([]any)
			Expect(should).To(HaveLen(2))

			full := should[0].(map[string]any)["multi_match"].(map[string]any)
			Expect(full).To(HaveKeyWithValue("_name", fullMatch))
			Expect(full).To(HaveKeyWithValue("operator", "and"))
			Expect(full).To(HaveKeyWithValue("fuzziness", "AUTO"))
			Expect(full).To(HaveKeyWithValue("fields", ConsistOf("text^2", "title")))

			partial := should[1].(map[string]any)["multi_match"].(map[string]any)
			Expect(partial).To(HaveKeyWithValue("_name", partialMatch))
			Expect(partial).To(HaveKeyWithValue("operator", "or"))
		})
	})

	DescribeTable("buildSort",
		func(sort string, want []string) {
			got := buildSort(sort)
			Expect(got).To(HaveLen(len(want)))
			for i, w := range want {
				Expect(got[i]).To(HaveKey(w))
			}
		},
		Entry("relevance", search.SortRelevance, []string{"_score", "created_at", "id"}),
		Entry("newest", search.SortNewest, []string{"created_at", "id"}),
		Entry("oldest", search.SortOldest, []string{"created_at", "id"}),
		Entry("rating_desc", search.SortRatingDesc, []string{"rating", "created_at", "id"}),
		Entry("rating_asc", search.SortRatingAsc, []string{"rating", "created_at", "id"}),
	)

	It("sorts oldest ascending and newest descending", func() {
		Expect(buildSort(search.SortOldest)[0]).To(Equal(map[string]any{"created_at": map[string]any{"order": "asc"}}))
		Expect(buildSort(search.SortNewest)[0]).To(Equal(map[string]any{"created_at": map[string]any{"order": "desc"}}))
	})
})

var _ = Describe("Aggregation builder", func() {
	It("shares the filter predicate with search", func() {
		f := search.Filters{ProductID: "P1", MinRating: intPtr(2), MaxRating: intPtr(4)}

		summary := roundTrip(buildSummaryBody(repository.SummaryOptions{Filters: f}))
		searchBody := roundTrip(buildSearchBody(repository.SearchOptions{Filters: f, Size: 10}))
		Expect(summary["query"]).To(Equal(searchBody["query"]))

		Expect(summary).To(HaveKeyWithValue("size", BeNumerically("==", 0)))
		Expect(summary).To(HaveKeyWithValue("aggs", And(HaveKey("avg_rating"), HaveKey("sentiments"))))
	})

	It("buckets trends by calendar interval and omits empty buckets", func() {
		body := roundTrip(buildTrendBody(repository.TrendOptions{Interval: search.IntervalWeek}))

		hist := body["aggs"].(map[string]any)["trend"].(map[string]any)["date_histogram"].(map[string]any)
		Expect(hist).To(HaveKeyWithValue("calendar_interval", "week"))
		Expect(hist).To(HaveKeyWithValue("min_doc_count", BeNumerically("==", 1)))
		Expect(hist).To(HaveKeyWithValue("time_zone", "UTC"))
	})
})
