package consumer

import (
	"context"
	"database/sql"

	"insight-srv/config"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/encrypter"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	"insight-srv/pkg/minio"
	pkgRabbit "insight-srv/pkg/rabbitmq"
	"insight-srv/pkg/redis"
	"insight-srv/pkg/scope"
)

// ConsumerServer runs the Kafka and RabbitMQ consumers.
type ConsumerServer struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Infrastructure clients
	redisClient   redis.IRedis
	postgresDB    *sql.DB
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer
	rabbitConn    pkgRabbit.IRabbitMQ
	backend       backend.IBackend

	// Security
	scopeManager scope.Manager
	encrypter    encrypter.Encrypter

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	RedisClient   redis.IRedis
	PostgresDB    *sql.DB
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer
	RabbitConn    pkgRabbit.IRabbitMQ
	Backend       backend.IBackend

	// Security
	ScopeManager scope.Manager
	Encrypter    encrypter.Encrypter

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		if srv.discord != nil {
			_ = srv.discord.SendError(ctx, "Insight consumer failed to start", "", err)
		}
		srv.stopConsumers(ctx, consumers)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(context.Background(), consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
