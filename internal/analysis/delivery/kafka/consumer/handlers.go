package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"insight-srv/internal/analysis"
	kafkaDelivery "insight-srv/internal/analysis/delivery/kafka"

	"github.com/IBM/sarama"
)

// handleAnalysisCompletedMessage decodes one message and hands it to the use
// case. Malformed messages are logged and skipped so they do not block the partition.
func (c *consumer) handleAnalysisCompletedMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	c.l.Debugf(ctx, "analysis.delivery.kafka.consumer.handleAnalysisCompletedMessage: partition %d, offset %d", msg.Partition, msg.Offset)

	var message kafkaDelivery.AnalysisCompletedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "analysis.delivery.kafka.consumer.handleAnalysisCompletedMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	if message.AnalysisID == "" {
		c.l.Warnf(ctx, "analysis.delivery.kafka.consumer.handleAnalysisCompletedMessage: Missing analysis_id (skipping)")
		return nil
	}

	input, err := toIngestInput(message)
	if err != nil {
		c.l.Warnf(ctx, "analysis.delivery.kafka.consumer.handleAnalysisCompletedMessage: Invalid result of %s (skipping): %v", message.AnalysisID, err)
		return nil
	}

	o, err := c.uc.Ingest(ctx, input)
	if err != nil {
		if isPermanent(err) {
			c.l.Warnf(ctx, "analysis.delivery.kafka.consumer.handleAnalysisCompletedMessage: Rejected %s (skipping): %v", message.AnalysisID, err)
			return nil
		}
		return fmt.Errorf("usecase Ingest: %w", err)
	}

	c.l.Infof(ctx, "analysis.delivery.kafka.consumer.handleAnalysisCompletedMessage: Ingested %s as %s", message.AnalysisID, o.Analysis.ID)
	return nil
}

// isPermanent reports whether redelivering the message could never succeed.
func isPermanent(err error) bool {
	return errors.Is(err, analysis.ErrExternalIDMissing) ||
		errors.Is(err, analysis.ErrURLRequired) ||
		errors.Is(err, analysis.ErrInvalidURL) ||
		errors.Is(err, analysis.ErrInvalidPayload)
}
