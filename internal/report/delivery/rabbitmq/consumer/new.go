package consumer

import (
	"context"
	"fmt"

	"insight-srv/internal/report"
	"insight-srv/pkg/encrypter"
	"insight-srv/pkg/log"
	pkgRabbit "insight-srv/pkg/rabbitmq"
	"insight-srv/pkg/scope"
)

const defaultPrefetch = 2

// Consumer consumes the report export queue.
type Consumer interface {
	ConsumeExports(ctx context.Context) error
	Close() error
}

type Config struct {
	Logger    log.Logger
	Conn      pkgRabbit.IRabbitMQ
	UseCase   report.UseCase
	ScopeMgr  scope.Manager
	Encrypter encrypter.Encrypter
	Prefetch  int
}

type consumer struct {
	l         log.Logger
	conn      pkgRabbit.IRabbitMQ
	uc        report.UseCase
	scopeMgr  scope.Manager
	encrypter encrypter.Encrypter
	prefetch  int

	ch pkgRabbit.IChannel
}

// New creates a new report consumer.
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.Conn == nil {
		return nil, fmt.Errorf("rabbitmq connection is required")
	}
	if cfg.ScopeMgr == nil || cfg.Encrypter == nil {
		return nil, fmt.Errorf("scope manager and encrypter are required")
	}
	if cfg.Prefetch <= 0 {
		cfg.Prefetch = defaultPrefetch
	}

	return &consumer{
		l:         cfg.Logger,
		conn:      cfg.Conn,
		uc:        cfg.UseCase,
		scopeMgr:  cfg.ScopeMgr,
		encrypter: cfg.Encrypter,
		prefetch:  cfg.Prefetch,
	}, nil
}

func (c *consumer) Close() error {
	if c.ch != nil {
		if err := c.ch.Close(); err != nil {
			return fmt.Errorf("failed to close export channel: %w", err)
		}
	}
	return nil
}
