package model

import (
	"encoding/json"
	"time"
)

// Review is the stored review document. SentimentLabel and SentimentScore are
// derived from Title and Text and never set by callers.
type Review struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Rating      int    `json:"rating"`

	// Content
	Title string `json:"title"`
	Text  string `json:"text"`

	// Derived
	SentimentLabel string  `json:"sentiment_label"`
	SentimentScore float64 `json:"sentiment_score"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
}

// NewReviewFromSource decodes a stored document.
func NewReviewFromSource(src json.RawMessage) (Review, error) {
	var r Review
	if err := json.Unmarshal(src, &r); err != nil {
		return Review{}, err
	}
	return r, nil
}
