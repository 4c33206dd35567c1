package main

import (
	"context"
	"fmt"
	"time"

	"insight-srv/config"
	configKafka "insight-srv/config/kafka"
	configMinIO "insight-srv/config/minio"
	configPostgre "insight-srv/config/postgre"
	configRabbit "insight-srv/config/rabbitmq"
	configRedis "insight-srv/config/redis"
	_ "insight-srv/docs" // Import swagger docs
	"insight-srv/internal/httpserver"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/encrypter"
	pkghttp "insight-srv/pkg/http"
	pkgJWT "insight-srv/pkg/jwt"
	"insight-srv/pkg/log"
	"insight-srv/pkg/scope"
)

// @title       SMAP Insight Service API
// @description SMAP Insight Service API documentation.
// @version     1
// @host        insight-srv.tantai.dev
// @schemes     https
// @BasePath    /insight
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name smap_auth_token
// @description Authentication token stored in HttpOnly cookie.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
//
// @securityDefinitions.apikey ServiceKey
// @in header
// @name X-Service-Key
// @description Internal service key for /internal routes.
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// 4. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize MinIO
	minioClient, err := configMinIO.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinIO.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// 7. Initialize Kafka producer (dashboard ready events)
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Kafka producer: ", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Infof(ctx, "Kafka producer connected to topic %s", cfg.Kafka.Topic)

	// 8. Initialize RabbitMQ (report export jobs)
	rabbitConn, err := configRabbit.Connect(logger, cfg.RabbitMQ)
	if err != nil {
		logger.Error(ctx, "Failed to connect to RabbitMQ: ", err)
		return
	}
	defer configRabbit.Disconnect()
	logger.Info(ctx, "RabbitMQ connected successfully")

	// 9. Initialize Discord (optional)
	discordClient := initializeDiscord(ctx, logger, cfg)

	// 10. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 11. Initialize backend client
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

	// 12. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB: postgresDB,

		// Infrastructure clients
		RedisClient:   redisClient,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
		RabbitConn:    rabbitConn,
		Backend:       backendClient,

		// Authentication & Security Configuration
		Config:       cfg,
		JWTManager:   jwtManager,
		ScopeManager: scope.New(cfg.JWT.SecretKey),
		CookieConfig: cfg.Cookie,
		Encrypter:    encrypterInstance,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// initializeDiscord returns nil when the webhook is not configured.
func initializeDiscord(ctx context.Context, logger log.Logger, cfg *config.Config) discord.IDiscord {
	if cfg.Discord.WebhookID == "" {
		logger.Warn(ctx, "Discord webhook not configured (optional)")
		return nil
	}

	webhook, err := discord.NewDiscordWebhook(cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
	if err != nil {
		logger.Warnf(ctx, "Discord webhook invalid (optional): %v", err)
		return nil
	}
	client, err := discord.New(logger, webhook, discord.Config{})
	if err != nil {
		logger.Warnf(ctx, "Discord client not initialized (optional): %v", err)
		return nil
	}

	logger.Infof(ctx, "Discord webhook initialized successfully")
	return client
}
