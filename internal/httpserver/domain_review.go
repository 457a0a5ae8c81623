package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"review-srv/internal/middleware"
	"review-srv/internal/review"
	reviewHTTP "review-srv/internal/review/delivery/http"
	reviewProducer "review-srv/internal/review/delivery/kafka/producer"
	reviewUsecase "review-srv/internal/review/usecase"
	"review-srv/pkg/sentiment"
)

func (srv *HTTPServer) setupReviewDomain(ctx context.Context, api, admin *gin.RouterGroup, mw middleware.Middleware) error {
	repo, _ := srv.repositories()

	var publisher review.Publisher
	if srv.kafkaProducer != nil {
		publisher = reviewProducer.New(srv.l, srv.kafkaProducer)
	}

	var invalidator review.AnalyticsInvalidator
	if srv.analyticsCache != nil {
		invalidator = srv.analyticsCache
	}

	uc := reviewUsecase.New(repo, sentiment.New(), publisher, invalidator, srv.l, reviewUsecase.Config{
		BulkConcurrency: srv.config.Review.BulkConcurrency,
		BulkMaxItems:    srv.config.Review.BulkMaxItems,
	})
	srv.reviewUC = uc

	handler := reviewHTTP.New(srv.l, uc)
	handler.RegisterRoutes(api, admin, mw)

	srv.l.Infof(ctx, "Review domain registered")
	return nil
}
