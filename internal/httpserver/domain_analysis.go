package httpserver

import (
	"context"
	"time"

	analysisHTTP "insight-srv/internal/analysis/delivery/http"
	analysisProducer "insight-srv/internal/analysis/delivery/kafka/producer"
	analysisPostgre "insight-srv/internal/analysis/repository/postgre"
	analysisRedis "insight-srv/internal/analysis/repository/redis"
	analysisUsecase "insight-srv/internal/analysis/usecase"
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupAnalysisDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := analysisPostgre.New(srv.postgresDB, srv.l)
	cache := analysisRedis.New(srv.redisClient, srv.l, time.Duration(srv.config.Cache.DashboardTTL)*time.Second)
	publisher := analysisProducer.New(srv.l, srv.kafkaProducer)

	srv.analysisUC = analysisUsecase.New(srv.l, repo, cache, srv.backend, publisher)

	handler := analysisHTTP.New(srv.l, srv.analysisUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Analysis domain registered")
	return nil
}
