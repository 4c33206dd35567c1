package consumer

import (
	"context"
	"fmt"
	"time"

	analysisConsumer "insight-srv/internal/analysis/delivery/kafka/consumer"
	analysisProducer "insight-srv/internal/analysis/delivery/kafka/producer"
	analysisPostgre "insight-srv/internal/analysis/repository/postgre"
	analysisRedis "insight-srv/internal/analysis/repository/redis"
	analysisUsecase "insight-srv/internal/analysis/usecase"
	reportRabbit "insight-srv/internal/report/delivery/rabbitmq"
	reportConsumer "insight-srv/internal/report/delivery/rabbitmq/consumer"
	reportProducer "insight-srv/internal/report/delivery/rabbitmq/producer"
	reportPostgre "insight-srv/internal/report/repository/postgre"
	reportUsecase "insight-srv/internal/report/usecase"
	pkgRabbit "insight-srv/pkg/rabbitmq"

	"golang.org/x/sync/errgroup"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	analysisConsumer analysisConsumer.Consumer
	reportConsumer   reportConsumer.Consumer
	publishChannel   pkgRabbit.IChannel
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	cfg := srv.config

	// Analysis domain
	analysisRepo := analysisPostgre.New(srv.postgresDB, srv.l)
	analysisCache := analysisRedis.New(srv.redisClient, srv.l, time.Duration(cfg.Cache.DashboardTTL)*time.Second)
	analysisUC := analysisUsecase.New(srv.l, analysisRepo, analysisCache, srv.backend, analysisProducer.New(srv.l, srv.kafkaProducer))

	analysisCons, err := analysisConsumer.New(analysisConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: cfg.Kafka,
		UseCase:     analysisUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis consumer: %w", err)
	}
	srv.l.Infof(ctx, "Analysis domain initialized")

	// Report domain
	ch, err := srv.rabbitConn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open report channel: %w", err)
	}
	if err := reportRabbit.DeclareTopology(ch); err != nil {
		_ = ch.Close()
		return nil, err
	}
	scopeTTL := time.Duration(cfg.Report.ScopeTTL) * time.Second
	reportUC := reportUsecase.New(
		srv.l,
		reportPostgre.New(srv.postgresDB, srv.l),
		analysisUC,
		srv.backend,
		srv.minioClient,
		reportProducer.New(srv.l, ch, srv.scopeManager, srv.encrypter, scopeTTL),
		reportUsecase.Config{
			ReportBucket: cfg.MinIO.Bucket,
			URLExpiry:    time.Duration(cfg.Report.URLExpiry) * time.Second,
		},
	)

	reportCons, err := reportConsumer.New(reportConsumer.Config{
		Logger:    srv.l,
		Conn:      srv.rabbitConn,
		UseCase:   reportUC,
		ScopeMgr:  srv.scopeManager,
		Encrypter: srv.encrypter,
		Prefetch:  cfg.RabbitMQ.Prefetch,
	})
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to create report consumer: %w", err)
	}
	srv.l.Infof(ctx, "Report domain initialized")

	return &domainConsumers{
		analysisConsumer: analysisCons,
		reportConsumer:   reportCons,
		publishChannel:   ch,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	var g errgroup.Group

	g.Go(func() error {
		if err := consumers.analysisConsumer.ConsumeAnalysisCompleted(ctx); err != nil {
			return fmt.Errorf("failed to start analysis consumer: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := consumers.reportConsumer.ConsumeExports(ctx); err != nil {
			return fmt.Errorf("failed to start report consumer: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.analysisConsumer != nil {
		if err := consumers.analysisConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing analysis consumer: %v", err)
		}
	}
	if consumers.reportConsumer != nil {
		if err := consumers.reportConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing report consumer: %v", err)
		}
	}
	if consumers.publishChannel != nil {
		if err := consumers.publishChannel.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing report publish channel: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
