package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/search", h.Search)

	analytics := r.Group("/analytics")
	{
		analytics.GET("/summary", h.Summary)
		analytics.GET("/trends", h.Trends)
	}
}
