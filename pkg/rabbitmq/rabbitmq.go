package rabbitmq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *connectionImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closing = true
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.isRetrying = false
}

func (c *connectionImpl) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn != nil && !c.conn.IsClosed()
}

func (c *connectionImpl) IsClosed() bool {
	c.mu.RLock()
	retrying := c.isRetrying
	c.mu.RUnlock()
	return !c.IsReady() && !retrying
}

func (c *connectionImpl) Channel() (IChannel, error) {
	ch, err := c.channel()
	if err != nil {
		return nil, err
	}
	chImpl := &channelImpl{conn: c, ch: ch}
	chImpl.listenNotifyReconnect()
	return chImpl, nil
}

func (c *connectionImpl) dial(connChan chan *amqp.Connection, cancelChan chan bool) {
	ctx := context.Background()
	for attempt := 1; ; attempt++ {
		select {
		case <-cancelChan:
			return
		default:
		}

		c.l.Infof(ctx, "pkg.rabbitmq.dial: connecting, attempt %d", attempt)
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.l.Warnf(ctx, "pkg.rabbitmq.dial: connection failed: %v", err)
			time.Sleep(RetryConnectionDelay)
			continue
		}

		select {
		case connChan <- conn:
		case <-cancelChan:
			_ = conn.Close()
		}
		return
	}
}

func (c *connectionImpl) connectWithoutTimeout() error {
	connChan := make(chan *amqp.Connection)
	go c.dial(connChan, make(chan bool))
	c.setConn(<-connChan)
	return nil
}

func (c *connectionImpl) connect() error {
	connChan := make(chan *amqp.Connection)
	cancelChan := make(chan bool)
	go c.dial(connChan, cancelChan)

	select {
	case conn := <-connChan:
		c.setConn(conn)
		return nil
	case <-time.After(RetryConnectionTimeout):
		close(cancelChan)
		return ErrConnectionTimeout
	}
}

func (c *connectionImpl) setConn(conn *amqp.Connection) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.l.Info(context.Background(), "pkg.rabbitmq: connected")
	c.listenNotifyClose(conn)
}

func (c *connectionImpl) listenNotifyClose(conn *amqp.Connection) {
	reconnect := c.connect
	if c.retryWithoutTimeout {
		reconnect = c.connectWithoutTimeout
	}

	notifyClose := conn.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		err, ok := <-notifyClose
		if !ok || err == nil {
			return
		}

		c.mu.Lock()
		if c.closing {
			c.mu.Unlock()
			return
		}
		c.conn = nil
		c.isRetrying = true
		c.mu.Unlock()

		ctx := context.Background()
		c.l.Warnf(ctx, "pkg.rabbitmq: connection closed: %v", err)
		if err := reconnect(); err != nil {
			c.l.Errorf(ctx, "pkg.rabbitmq: reconnect failed: %v", err)
		}

		c.mu.Lock()
		c.isRetrying = false
		receivers := append([]chan bool(nil), c.reconnects...)
		c.mu.Unlock()
		for _, r := range receivers {
			r <- true
		}
	}()
}

func (c *connectionImpl) channel() (*amqp.Channel, error) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return nil, ErrNotConnected
	}
	return conn.Channel()
}

func (c *connectionImpl) notifyReconnect(receiver chan bool) {
	c.mu.Lock()
	c.reconnects = append(c.reconnects, receiver)
	c.mu.Unlock()
}

func (ch *channelImpl) current() *amqp.Channel {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	return ch.ch
}

func (ch *channelImpl) ExchangeDeclare(exc ExchangeArgs) error {
	return ch.current().ExchangeDeclare(exc.spread())
}

func (ch *channelImpl) QueueDeclare(queue QueueArgs) (amqp.Queue, error) {
	return ch.current().QueueDeclare(queue.spread())
}

func (ch *channelImpl) QueueBind(queueBind QueueBindArgs) error {
	return ch.current().QueueBind(queueBind.spread())
}

func (ch *channelImpl) Qos(prefetchCount int) error {
	return ch.current().Qos(prefetchCount, 0, false)
}

func (ch *channelImpl) Publish(ctx context.Context, publish PublishArgs) error {
	return ch.current().PublishWithContext(publish.spread(ctx))
}

func (ch *channelImpl) Consume(consume ConsumeArgs) (<-chan amqp.Delivery, error) {
	return ch.current().Consume(consume.spread())
}

func (ch *channelImpl) Close() error {
	return ch.current().Close()
}

func (ch *channelImpl) NotifyReconnect(receiver chan bool) <-chan bool {
	ch.mu.Lock()
	ch.reconnects = append(ch.reconnects, receiver)
	ch.mu.Unlock()
	return receiver
}

func (ch *channelImpl) listenNotifyReconnect() {
	reconnected := make(chan bool)
	ch.conn.notifyReconnect(reconnected)

	go func() {
		ctx := context.Background()
		for range reconnected {
			channel, err := ch.conn.channel()
			if err != nil {
				ch.conn.l.Errorf(ctx, "pkg.rabbitmq: recreate channel failed: %v", err)
				continue
			}

			ch.mu.Lock()
			_ = ch.ch.Close()
			ch.ch = channel
			receivers := append([]chan bool(nil), ch.reconnects...)
			ch.mu.Unlock()

			for _, r := range receivers {
				select {
				case r <- true:
				default:
				}
			}
		}
	}()
}
