package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	searchHTTP "review-srv/internal/search/delivery/http"
	searchUsecase "review-srv/internal/search/usecase"
)

func (srv *HTTPServer) setupSearchDomain(ctx context.Context, api *gin.RouterGroup) error {
	_, repo := srv.repositories()

	uc := searchUsecase.New(repo, srv.analyticsCache, srv.l, searchUsecase.Config{
		AggregationTimeout: srv.config.SearchEngine.AggregationTimeout,
	})
	srv.searchUC = uc

	handler := searchHTTP.New(srv.l, uc)
	handler.RegisterRoutes(api)

	srv.l.Infof(ctx, "Search domain registered")
	return nil
}
