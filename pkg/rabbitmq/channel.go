package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (ch *channelImpl) current() (*amqp.Channel, error) {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	if ch.closed {
		return nil, ErrChannelClosed
	}
	return ch.ch, nil
}

func (ch *channelImpl) ExchangeDeclare(exc ExchangeArgs) error {
	c, err := ch.current()
	if err != nil {
		return err
	}
	return c.ExchangeDeclare(exc.spread())
}

func (ch *channelImpl) QueueDeclare(queue QueueArgs) (amqp.Queue, error) {
	c, err := ch.current()
	if err != nil {
		return amqp.Queue{}, err
	}
	return c.QueueDeclare(queue.spread())
}

func (ch *channelImpl) QueueBind(queueBind QueueBindArgs) error {
	c, err := ch.current()
	if err != nil {
		return err
	}
	return c.QueueBind(queueBind.spread())
}

func (ch *channelImpl) Qos(prefetchCount int) error {
	c, err := ch.current()
	if err != nil {
		return err
	}
	return c.Qos(prefetchCount, 0, false)
}

func (ch *channelImpl) Publish(ctx context.Context, publish PublishArgs) error {
	c, err := ch.current()
	if err != nil {
		return err
	}
	return c.PublishWithContext(publish.spread(ctx))
}

func (ch *channelImpl) Consume(consume ConsumeArgs) (<-chan amqp.Delivery, error) {
	c, err := ch.current()
	if err != nil {
		return nil, err
	}
	return c.Consume(consume.spread())
}

func (ch *channelImpl) Close() error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.closed {
		return nil
	}
	ch.closed = true
	close(ch.done)
	return ch.ch.Close()
}

// listenReconnect swaps in a fresh channel each time the connection is redialed.
func (ch *channelImpl) listenReconnect() {
	go func() {
		ctx := context.Background()
		for {
			select {
			case <-ch.done:
				return
			case <-ch.reconnect:
			}

			fresh, err := ch.conn.channel()
			if err != nil {
				ch.conn.l.Errorf(ctx, "Reopening RabbitMQ channel failed: %v", err)
				continue
			}

			ch.mu.Lock()
			if ch.closed {
				ch.mu.Unlock()
				_ = fresh.Close()
				return
			}
			old := ch.ch
			ch.ch = fresh
			ch.mu.Unlock()
			_ = old.Close()
		}
	}()
}
