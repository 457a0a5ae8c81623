package http

import (
	"review-srv/internal/search"
	"review-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Search and analytics HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)

	Search(c *gin.Context)
	Summary(c *gin.Context)
	Trends(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc search.UseCase
}

// New - Factory
func New(l log.Logger, uc search.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
