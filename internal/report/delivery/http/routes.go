package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	exports := r.Group("/api/v1/analyses/:analysis_id/exports", mw.Auth())
	{
		exports.POST("", h.Export)
		exports.GET("", h.List)
	}

	reports := r.Group("/api/v1/reports", mw.Auth())
	{
		reports.GET("/:report_id", h.Get)
		reports.GET("/:report_id/download", h.Download)
	}
}
