package httpserver

import (
	"database/sql"
	"errors"

	"insight-srv/config"
	"insight-srv/internal/analysis"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/encrypter"
	pkgJWT "insight-srv/pkg/jwt"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	"insight-srv/pkg/minio"
	pkgRabbit "insight-srv/pkg/rabbitmq"
	pkgRedis "insight-srv/pkg/redis"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB

	// Infrastructure clients
	redisClient   pkgRedis.IRedis
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer
	rabbitConn    pkgRabbit.IRabbitMQ
	backend       backend.IBackend

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   pkgJWT.IManager
	scopeManager scope.Manager
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Shared usecases, set while mapping handlers
	analysisUC analysis.UseCase

	readiness []dependency
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB

	// Infrastructure clients
	RedisClient   pkgRedis.IRedis
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer
	RabbitConn    pkgRabbit.IRabbitMQ
	Backend       backend.IBackend

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   pkgJWT.IManager
	ScopeManager scope.Manager
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB: cfg.PostgresDB,

		// Infrastructure clients
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,
		rabbitConn:    cfg.RabbitConn,
		backend:       cfg.Backend,

		// Authentication & Security Configuration
		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		scopeManager: cfg.ScopeManager,
		cookieConfig: cfg.CookieConfig,
		encrypter:    cfg.Encrypter,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.readiness = srv.readinessChecks()

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.kafkaProducer == nil {
		return errors.New("kafkaProducer is required")
	}
	if srv.rabbitConn == nil {
		return errors.New("rabbitConn is required")
	}
	if srv.backend == nil {
		return errors.New("backend is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.scopeManager == nil {
		return errors.New("scopeManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	// Monitoring & Notification Configuration (optional)

	return nil
}
