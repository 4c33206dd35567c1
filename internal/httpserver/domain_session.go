package httpserver

import (
	"context"
	"time"

	"insight-srv/internal/middleware"
	sessionHTTP "insight-srv/internal/session/delivery/http"
	sessionRedis "insight-srv/internal/session/repository/redis"
	sessionUsecase "insight-srv/internal/session/usecase"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupSessionDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cache := sessionRedis.New(srv.redisClient, srv.l, time.Duration(srv.config.Cache.SessionTTL)*time.Second)
	uc := sessionUsecase.New(srv.l, cache, srv.backend)

	handler := sessionHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Session domain registered")
	return nil
}
