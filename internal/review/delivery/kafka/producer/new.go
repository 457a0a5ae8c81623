package producer

import (
	"time"

	"review-srv/internal/review"
	pkgKafka "review-srv/pkg/kafka"
	"review-srv/pkg/log"
)

// Producer interface for review domain
type Producer interface {
	review.Publisher
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
	now      func() time.Time
}

// New creates a new review event producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
		now:      time.Now,
	}
}
