package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"review-srv/internal/middleware"
	"review-srv/pkg/metrics"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.jwtManager)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.setupCoreDomains(ctx); err != nil {
		return fmt.Errorf("failed to setup core domains: %w", err)
	}

	api := srv.gin.Group("/api/v1")
	admin := srv.gin.Group("/admin")

	if err := srv.setupReviewDomain(ctx, api, admin, mw); err != nil {
		return fmt.Errorf("failed to setup review domain: %w", err)
	}
	if err := srv.setupSearchDomain(ctx, api); err != nil {
		return fmt.Errorf("failed to setup search domain: %w", err)
	}

	if srv.config.SearchEngine.BootstrapOnStart {
		srv.bootstrapIndex(ctx)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(middleware.RequestID())
	srv.gin.Use(middleware.Metrics())

	if srv.jwtManager == nil {
		srv.l.Warnf(context.Background(), "JWT secret not configured, write routes are unauthenticated")
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.registry != nil {
		srv.gin.GET("/metrics", gin.WrapH(metrics.Handler(srv.registry)))
	}

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// bootstrapIndex creates the review index when missing. A failure is logged
// and the server keeps starting; POST /admin/index can retry later.
func (srv *HTTPServer) bootstrapIndex(ctx context.Context) {
	out, err := srv.reviewUC.EnsureIndex(ctx)
	if err != nil {
		srv.l.Warnf(ctx, "Index bootstrap failed: %v", err)
		return
	}
	if out.Created {
		srv.l.Infof(ctx, "Index %s created", out.Index)
	} else {
		srv.l.Infof(ctx, "Index %s already exists", out.Index)
	}
}
