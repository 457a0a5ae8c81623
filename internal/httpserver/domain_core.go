package httpserver

import (
	"context"

	"review-srv/config"
	reviewRepo "review-srv/internal/review/repository"
	reviewES "review-srv/internal/review/repository/elasticsearch"
	reviewMemory "review-srv/internal/review/repository/memory"
	searchRepo "review-srv/internal/search/repository"
	searchES "review-srv/internal/search/repository/elasticsearch"
	searchMemory "review-srv/internal/search/repository/memory"
	searchRedis "review-srv/internal/search/repository/redis"
)

// setupCoreDomains builds the analytics cache shared by the review write path
// and the search read path.
func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	if srv.redisClient != nil {
		srv.analyticsCache = searchRedis.New(srv.redisClient, srv.config.Redis.AnalyticsTTL, srv.l)
		srv.l.Infof(ctx, "Analytics cache enabled (ttl %s)", srv.config.Redis.AnalyticsTTL)
	} else {
		srv.l.Infof(ctx, "Analytics cache disabled")
	}
	return nil
}

// repositories returns the review and search repositories of the configured driver.
func (srv *HTTPServer) repositories() (reviewRepo.Repository, searchRepo.Repository) {
	index := srv.config.SearchEngine.Index
	if srv.config.SearchEngine.Driver == config.DriverMemory {
		return reviewMemory.New(srv.memDriver, index), searchMemory.New(srv.memDriver)
	}
	return reviewES.New(srv.es, index, srv.l), searchES.New(srv.es, index, srv.l)
}
