package consumer

import (
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// retryBackoff is how long a claim waits before giving up the session after a
// transient failure.
const retryBackoff = 2 * time.Second

type analysisCompletedHandler struct {
	consumer *consumer
	backoff  time.Duration
}

func (h *analysisCompletedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *analysisCompletedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim stops at the first message that fails transiently and leaves
// it unmarked. Ending the claim ends the session, and the next session
// resumes from the last committed offset, so the message is redelivered.
func (h *analysisCompletedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for msg := range claim.Messages() {
		if err := h.consumer.handleAnalysisCompletedMessage(ctx, msg); err != nil {
			h.consumer.l.Errorf(ctx, "analysis.delivery.kafka.consumer.ConsumeClaim: Failed to process message at offset %d, retrying: %v", msg.Offset, err)

			t := time.NewTimer(h.backoff)
			select {
			case <-ctx.Done():
			case <-t.C:
			}
			t.Stop()
			return fmt.Errorf("offset %d: %w", msg.Offset, err)
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
