package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/insights")
	{
		api.POST("/normalize", h.Normalize)
		api.POST("/cards", h.Cards)
	}
}
