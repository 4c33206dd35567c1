package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/session", mw.Auth())
	{
		api.GET("", h.Get)
		api.POST("/logout", h.Logout)
	}
}
