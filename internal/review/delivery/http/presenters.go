package http

import (
	"review-srv/internal/model"
	"review-srv/internal/review"
	"review-srv/pkg/response"
)

// =====================================================
// Request DTOs
// =====================================================

// createReq is validated by the usecase so bulk items fail independently.
type createReq struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Rating      int    `json:"rating"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	CreatedAt   string `json:"created_at"`
}

func (r createReq) toInput() review.CreateInput {
	return review.CreateInput{
		ID:          r.ID,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Rating:      r.Rating,
		Title:       r.Title,
		Text:        r.Text,
		CreatedAt:   r.CreatedAt,
	}
}

// updateReq - only provided keys are applied. sentiment_* are rejected.
type updateReq struct {
	ProductID      *string  `json:"product_id"`
	ProductName    *string  `json:"product_name"`
	Rating         *int     `json:"rating"`
	Title          *string  `json:"title"`
	Text           *string  `json:"text"`
	CreatedAt      *string  `json:"created_at"`
	SentimentLabel *string  `json:"sentiment_label"`
	SentimentScore *float64 `json:"sentiment_score"`
}

func (r updateReq) validate() error {
	if r.SentimentLabel != nil || r.SentimentScore != nil {
		return errDerivedField
	}
	return nil
}

func (r updateReq) toPatch() review.Patch {
	return review.Patch{
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Rating:      r.Rating,
		Title:       r.Title,
		Text:        r.Text,
		CreatedAt:   r.CreatedAt,
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

func newReviewResp(r model.Review) reviewResp {
	return reviewResp{
		ID:             r.ID,
		ProductID:      r.ProductID,
		ProductName:    r.ProductName,
		Rating:         r.Rating,
		Title:          r.Title,
		Text:           r.Text,
		CreatedAt:      response.DateTime(r.CreatedAt),
		SentimentLabel: r.SentimentLabel,
		SentimentScore: r.SentimentScore,
	}
}

type deleteResp struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

type bulkItemResp struct {
	Index        int    `json:"index"`
	ID           string `json:"id,omitempty"`
	Success      bool   `json:"success"`
	ErrorType    string `json:"error_type,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type bulkCreateResp struct {
	BatchID   string         `json:"batch_id"`
	Total     int            `json:"total"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Items     []bulkItemResp `json:"items"`
}

func newBulkCreateResp(o review.BulkOutput) bulkCreateResp {
	resp := bulkCreateResp{
		BatchID:   o.BatchID,
		Total:     o.Total,
		Succeeded: o.Succeeded,
		Failed:    o.Failed,
		Items:     make([]bulkItemResp, len(o.Items)),
	}
	for i, it := range o.Items {
		resp.Items[i] = bulkItemResp{
			Index:        it.Index,
			ID:           it.ID,
			Success:      it.Success,
			ErrorType:    it.ErrorType,
			ErrorMessage: it.ErrorMessage,
		}
	}
	return resp
}

type ensureIndexResp struct {
	Index   string `json:"index"`
	Created bool   `json:"created"`
}
