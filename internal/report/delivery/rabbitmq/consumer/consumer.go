package consumer

import (
	"context"
	"fmt"

	rabbitDelivery "insight-srv/internal/report/delivery/rabbitmq"
	pkgRabbit "insight-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConsumeExports subscribes to the export queue and handles jobs until ctx
// is cancelled. The subscription is renewed after the broker reconnects.
func (c *consumer) ConsumeExports(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	c.ch = ch

	deliveries, err := c.subscribe()
	if err != nil {
		return err
	}
	reconnected := ch.NotifyReconnect(make(chan bool, 1))

	go func() {
		for {
			c.drain(ctx, deliveries)
			if ctx.Err() != nil {
				return
			}

			c.l.Warnf(ctx, "report.delivery.rabbitmq.consumer.ConsumeExports: Deliveries closed, waiting for reconnect")
			for {
				select {
				case <-ctx.Done():
					return
				case <-reconnected:
				}
				d, err := c.subscribe()
				if err == nil {
					deliveries = d
					break
				}
				c.l.Errorf(ctx, "report.delivery.rabbitmq.consumer.ConsumeExports: Resubscribe failed: %v", err)
			}
		}
	}()

	c.l.Infof(ctx, "Consuming %s", rabbitDelivery.QueueExport)
	return nil
}

// drain handles deliveries until the channel closes or ctx is done.
func (c *consumer) drain(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			c.handleDelivery(ctx, d)
		}
	}
}

func (c *consumer) subscribe() (<-chan amqp.Delivery, error) {
	if err := rabbitDelivery.DeclareTopology(c.ch); err != nil {
		return nil, err
	}
	if err := c.ch.Qos(c.prefetch); err != nil {
		return nil, fmt.Errorf("failed to set qos: %w", err)
	}

	deliveries, err := c.ch.Consume(pkgRabbit.ConsumeArgs{
		Queue:    rabbitDelivery.QueueExport,
		Consumer: rabbitDelivery.ConsumerExport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to consume %s: %w", rabbitDelivery.QueueExport, err)
	}
	return deliveries, nil
}
