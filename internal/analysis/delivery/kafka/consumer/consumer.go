package consumer

import (
	"context"

	kafkaDelivery "insight-srv/internal/analysis/delivery/kafka"
)

// ConsumeAnalysisCompleted joins the analysis completed group and consumes
// until ctx is cancelled.
func (c *consumer) ConsumeAnalysisCompleted(ctx context.Context) error {
	groupID := c.kafkaConfig.GroupID
	if groupID == "" {
		groupID = kafkaDelivery.GroupIDAnalysisCompleted
	}
	group, err := c.createConsumerGroup(groupID)
	if err != nil {
		return err
	}
	c.analysisCompletedGroup = group

	handler := &analysisCompletedHandler{consumer: c, backoff: retryBackoff}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicAnalysisCompleted}, handler); err != nil {
					c.l.Errorf(ctx, "analysis.delivery.kafka.consumer.ConsumeAnalysisCompleted: Consume failed: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "analysis.delivery.kafka.consumer.ConsumeAnalysisCompleted: Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicAnalysisCompleted)
	return nil
}
