package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"review-srv/internal/review"
	kafkaDelivery "review-srv/internal/review/delivery/kafka"
)

// PublishReviewEvent publishes a review lifecycle event keyed by review id.
func (p *implProducer) PublishReviewEvent(ctx context.Context, event review.Event) error {
	msg := kafkaDelivery.ReviewEventMessage{
		EventType:  event.Type,
		ReviewID:   event.Review.ID,
		OccurredAt: p.now().UTC(),
	}
	if event.Type != review.EventDeleted {
		rv := event.Review
		msg.Review = &kafkaDelivery.ReviewPayload{
			ProductID:      rv.ProductID,
			ProductName:    rv.ProductName,
			Rating:         rv.Rating,
			SentimentLabel: rv.SentimentLabel,
			SentimentScore: rv.SentimentScore,
			CreatedAt:      rv.CreatedAt,
		}
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal review event: %w", err)
	}

	if err := p.producer.Publish([]byte(event.Review.ID), body); err != nil {
		return fmt.Errorf("failed to publish review event: %w", err)
	}

	p.l.Debugf(ctx, "Published %s for review %s", event.Type, event.Review.ID)
	return nil
}
