package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/analyses", mw.Auth())
	{
		api.POST("", h.Analyze)
		api.GET("", h.List)
		api.GET("/:analysis_id", h.Detail)
		api.DELETE("/:analysis_id", h.Delete)
	}

	internal := r.Group("/internal/v1/analyses", mw.ServiceAuth())
	{
		internal.POST("", h.Ingest)
	}
}
