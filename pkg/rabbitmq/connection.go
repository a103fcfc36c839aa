package rabbitmq

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *connectionImpl) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn != nil && !c.conn.IsClosed()
}

// Close closes the connection and stops redialing.
func (c *connectionImpl) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *connectionImpl) Channel() (IChannel, error) {
	ch, err := c.channel()
	if err != nil {
		return nil, err
	}

	chImpl := &channelImpl{
		conn:      c,
		ch:        ch,
		reconnect: c.notifyReconnect(),
		done:      make(chan struct{}),
	}
	chImpl.listenReconnect()
	return chImpl, nil
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

// connect dials until it succeeds or cfg.DialTimeout elapses.
func (c *connectionImpl) connect() error {
	ctx := context.Background()
	deadline := time.Now().Add(c.cfg.DialTimeout)

	for attempt := 1; ; attempt++ {
		conn, err := amqp.Dial(c.cfg.URL)
		if err == nil {
			c.mu.Lock()
			if c.closed {
				c.mu.Unlock()
				_ = conn.Close()
				return ErrNotConnected
			}
			c.conn = conn
			c.mu.Unlock()

			c.l.Infof(ctx, "Connected to RabbitMQ after %d attempt(s)", attempt)
			c.listenNotifyClose(conn)
			return nil
		}

		c.l.Warnf(ctx, "Connection to RabbitMQ failed (attempt %d): %v", attempt, err)
		if time.Now().Add(c.cfg.RetryDelay).After(deadline) {
			return fmt.Errorf("%w: %w", ErrConnectionTimeout, err)
		}
		time.Sleep(c.cfg.RetryDelay)
	}
}

// listenNotifyClose redials when the broker drops conn, then wakes every channel so it
// can reopen. A graceful Close sends no error and ends the listener.
func (c *connectionImpl) listenNotifyClose(conn *amqp.Connection) {
	notifyClose := conn.NotifyClose(make(chan *amqp.Error, 1))

	go func() {
		ctx := context.Background()

		amqpErr, ok := <-notifyClose
		if !ok || amqpErr == nil {
			return
		}
		c.l.Warnf(ctx, "Connection to RabbitMQ closed: %v", amqpErr)

		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()

		for {
			if c.isClosed() {
				return
			}
			err := c.connect()
			if err == nil {
				break
			}
			c.l.Errorf(ctx, "Reconnecting to RabbitMQ failed: %v", err)
		}

		c.mu.RLock()
		receivers := append([]chan struct{}(nil), c.reconnects...)
		c.mu.RUnlock()
		for _, r := range receivers {
			select {
			case r <- struct{}{}:
			default:
			}
		}
	}()
}

func (c *connectionImpl) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

func (c *connectionImpl) notifyReconnect() chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := make(chan struct{}, 1)
	c.reconnects = append(c.reconnects, r)
	return r
}
