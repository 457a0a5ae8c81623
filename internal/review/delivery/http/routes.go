package http

import (
	"review-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, admin *gin.RouterGroup, mw middleware.Middleware) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("/:id", h.Get)

		write := reviews.Group("")
		write.Use(mw.Auth())
		write.POST("", h.Create)
		write.POST("/bulk", h.BulkCreate)
		write.PATCH("/:id", h.Update)
		write.PUT("/:id", h.Update)
		write.DELETE("/:id", h.Delete)
	}

	admin.Use(mw.Auth())
	admin.POST("/index", h.EnsureIndex)
}
