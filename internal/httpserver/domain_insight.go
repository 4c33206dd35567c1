package httpserver

import (
	"context"

	insightHTTP "insight-srv/internal/insight/delivery/http"
	insightUsecase "insight-srv/internal/insight/usecase"
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupInsightDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := insightUsecase.New(srv.l)

	handler := insightHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Insight domain registered")
	return nil
}
