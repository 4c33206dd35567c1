package consumer

import (
	"context"
	"fmt"

	"insight-srv/config"
	"insight-srv/internal/analysis"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
)

// Consumer consumes the analysis domain topics.
type Consumer interface {
	ConsumeAnalysisCompleted(ctx context.Context) error
	Close() error
}

type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     analysis.UseCase
}

type consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          analysis.UseCase

	analysisCompletedGroup pkgKafka.IConsumer
}

// New creates a new analysis consumer.
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

func (c *consumer) Close() error {
	if c.analysisCompletedGroup != nil {
		if err := c.analysisCompletedGroup.Close(); err != nil {
			return fmt.Errorf("failed to close analysis completed group: %w", err)
		}
	}
	return nil
}

func (c *consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}
	return group, nil
}
