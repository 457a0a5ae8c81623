package kafka

import "time"

// ReviewEventMessage is the JSON body published for each review write.
// Review is omitted for deletes.
type ReviewEventMessage struct {
	EventType  string         `json:"event_type"`
	ReviewID   string         `json:"review_id"`
	Review     *ReviewPayload `json:"review,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type ReviewPayload struct {
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Rating         int       `json:"rating"`
	SentimentLabel string    `json:"sentiment_label"`
	SentimentScore float64   `json:"sentiment_score"`
	CreatedAt      time.Time `json:"created_at"`
}
