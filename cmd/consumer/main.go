package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"insight-srv/config"
	"insight-srv/config/kafka"
	"insight-srv/config/minio"
	"insight-srv/config/postgre"
	"insight-srv/config/rabbitmq"
	"insight-srv/config/redis"
	"insight-srv/internal/consumer"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/encrypter"
	pkghttp "insight-srv/pkg/http"
	"insight-srv/pkg/log"
	"insight-srv/pkg/scope"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Insight Consumer Service...")

	// Kafka Producer (for publishing dashboard ready events)
	kafkaProducer, err := kafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer kafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// RabbitMQ
	rabbitConn, err := rabbitmq.Connect(logger, cfg.RabbitMQ)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
		return
	}
	defer rabbitmq.Disconnect()
	logger.Info(ctx, "RabbitMQ connection initialized")

	// Redis
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect(context.Background(), postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// MinIO
	minioClient, err := minio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer minio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// Backend
	backendClient := backend.New(backend.Config{
		BaseURL: cfg.Backend.URL,
		HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   time.Duration(cfg.Backend.Timeout) * time.Second,
			Retries:   cfg.Backend.Retries,
			RetryWait: backend.DefaultRetryWait,
		}),
		AnalyzeClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: time.Duration(cfg.Backend.Timeout) * time.Second,
		}),
	})
	logger.Info(ctx, "Backend client initialized")

	// Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		webhook, err := discord.NewDiscordWebhook(cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if err == nil {
			discordClient, err = discord.New(logger, webhook, discord.Config{})
		}
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
			discordClient = nil
		} else {
			logger.Info(ctx, "Discord client initialized")
		}
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:        logger,
		Config:        cfg,
		RedisClient:   redisClient,
		PostgresDB:    postgresDB,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
		RabbitConn:    rabbitConn,
		Backend:       backendClient,
		ScopeManager:  scope.New(cfg.JWT.SecretKey),
		Encrypter:     encrypter.New(cfg.Encrypter.Key),
		Discord:       discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
