package consumer

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// handleDelivery acks handled jobs. A failed job is requeued once, then dropped.
func (c *consumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	if err := c.handleExportMessage(ctx, d); err != nil {
		requeue := !d.Redelivered
		c.l.Errorf(ctx, "report.delivery.rabbitmq.consumer.handleDelivery: Job %s failed (requeue=%t): %v", d.MessageId, requeue, err)
		if err := d.Nack(false, requeue); err != nil {
			c.l.Errorf(ctx, "report.delivery.rabbitmq.consumer.handleDelivery: Nack failed: %v", err)
		}
		return
	}

	if err := d.Ack(false); err != nil {
		c.l.Errorf(ctx, "report.delivery.rabbitmq.consumer.handleDelivery: Ack failed: %v", err)
	}
}
