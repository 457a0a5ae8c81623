package http

import (
	"github.com/gin-gonic/gin"

	"review-srv/internal/middleware"
	"review-srv/internal/review"
	"review-srv/pkg/log"
)

// Handler defines the HTTP handler interface
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, admin *gin.RouterGroup, mw middleware.Middleware)

	Create(c *gin.Context)
	BulkCreate(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	EnsureIndex(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc review.UseCase
}

// New creates a new HTTP handler
func New(l log.Logger, uc review.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
