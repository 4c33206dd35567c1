package httpserver

import (
	"context"
	"fmt"
	"time"

	"insight-srv/internal/middleware"
	reportHTTP "insight-srv/internal/report/delivery/http"
	reportRabbit "insight-srv/internal/report/delivery/rabbitmq"
	reportProducer "insight-srv/internal/report/delivery/rabbitmq/producer"
	reportPostgre "insight-srv/internal/report/repository/postgre"
	reportUsecase "insight-srv/internal/report/usecase"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	ch, err := srv.rabbitConn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open report channel: %w", err)
	}
	if err := reportRabbit.DeclareTopology(ch); err != nil {
		return err
	}

	repo := reportPostgre.New(srv.postgresDB, srv.l)
	publisher := reportProducer.New(srv.l, ch, srv.scopeManager, srv.encrypter, time.Duration(srv.config.Report.ScopeTTL)*time.Second)

	uc := reportUsecase.New(srv.l, repo, srv.analysisUC, srv.backend, srv.minioClient, publisher, reportUsecase.Config{
		ReportBucket: srv.config.MinIO.Bucket,
		URLExpiry:    time.Duration(srv.config.Report.URLExpiry) * time.Second,
	})

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
