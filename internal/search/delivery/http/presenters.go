package http

import (
	"review-srv/internal/search"
	"review-srv/pkg/paginator"
	"review-srv/pkg/response"
)

// =====================================================
// Request DTOs
// =====================================================

// queryReq is bound from the query string; values are parsed by search.RawParams.
type queryReq struct {
	Q         string `form:"q"`
	ProductID string `form:"productId"`
	MinRating string `form:"minRating"`
	MaxRating string `form:"maxRating"`
	Sentiment string `form:"sentiment"`
	DateFrom  string `form:"dateFrom"`
	DateTo    string `form:"dateTo"`
	Sort      string `form:"sort"`
	Page      string `form:"page"`
	Size      string `form:"size"`
	Interval  string `form:"interval"`
}

func (r queryReq) toRawParams() search.RawParams {
	return search.RawParams{
		Q:         r.Q,
		ProductID: r.ProductID,
		MinRating: r.MinRating,
		MaxRating: r.MaxRating,
		Sentiment: r.Sentiment,
		DateFrom:  r.DateFrom,
		DateTo:    r.DateTo,
		Sort:      r.Sort,
		Page:      r.Page,
		Size:      r.Size,
		Interval:  r.Interval,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type reviewResp struct {
	ID             string            `json:"id"`
	ProductID      string            `json:"product_id"`
	ProductName    string            `json:"product_name"`
	Rating         int               `json:"rating"`
	Title          string            `json:"title"`
	Text           string            `json:"text"`
	CreatedAt      response.DateTime `json:"created_at"`
	SentimentLabel string            `json:"sentiment_label"`
	SentimentScore float64           `json:"sentiment_score"`
}

type searchItemResp struct {
	Record     reviewResp          `json:"record"`
	Score      *float64            `json:"score"`
	Highlights map[string][]string `json:"highlights"`
	Partial    bool                `json:"partial"`
}

type searchResp struct {
	Page      int                         `json:"page"`
	Size      int                         `json:"size"`
	Total     int                         `json:"total"`
	Items     []searchItemResp            `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newSearchResp(o search.SearchOutput) searchResp {
	resp := searchResp{
		Page:      o.Paginator.CurrentPage,
		Size:      o.Paginator.PerPage,
		Total:     o.Total,
		Items:     make([]searchItemResp, 0, len(o.Items)),
		Paginator: o.Paginator.ToResponse(),
	}
	for _, it := range o.Items {
		rv := it.Review
		hl := it.Highlights
		if hl == nil {
			hl = map[string][]string{}
		}
		resp.Items = append(resp.Items, searchItemResp{
			Record: reviewResp{
				ID:             rv.ID,
				ProductID:      rv.ProductID,
				ProductName:    rv.ProductName,
				Rating:         rv.Rating,
				Title:          rv.Title,
				Text:           rv.Text,
				CreatedAt:      response.DateTime(rv.CreatedAt),
				SentimentLabel: rv.SentimentLabel,
				SentimentScore: rv.SentimentScore,
			},
			Score:      it.Score,
			Highlights: hl,
			Partial:    it.Partial,
		})
	}
	return resp
}

type sentimentCountsResp struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

func newSentimentCountsResp(s search.SentimentCounts) sentimentCountsResp {
	return sentimentCountsResp{Positive: s.Positive, Negative: s.Negative, Neutral: s.Neutral}
}

type summaryResp struct {
	Total           int                 `json:"total"`
	AvgRating       float64             `json:"avg_rating"`
	SentimentCounts sentimentCountsResp `json:"sentiment_counts"`
}

func newSummaryResp(o search.SummaryOutput) summaryResp {
	return summaryResp{
		Total:           o.Total,
		AvgRating:       o.AvgRating,
		SentimentCounts: newSentimentCountsResp(o.SentimentCounts),
	}
}

type trendBucketResp struct {
	Start           response.DateTime   `json:"start"`
	Count           int                 `json:"count"`
	AvgRating       float64             `json:"avg_rating"`
	SentimentCounts sentimentCountsResp `json:"sentiment_counts"`
}

type trendResp struct {
	Interval string            `json:"interval"`
	Buckets  []trendBucketResp `json:"buckets"`
}

func newTrendResp(o search.TrendOutput) trendResp {
	resp := trendResp{
		Interval: o.Interval,
		Buckets:  make([]trendBucketResp, 0, len(o.Buckets)),
	}
	for _, b := range o.Buckets {
		resp.Buckets = append(resp.Buckets, trendBucketResp{
			Start:           response.DateTime(b.Start),
			Count:           b.Count,
			AvgRating:       b.AvgRating,
			SentimentCounts: newSentimentCountsResp(b.SentimentCounts),
		})
	}
	return resp
}
