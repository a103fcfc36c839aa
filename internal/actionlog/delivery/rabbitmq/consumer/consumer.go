package consumer

import (
	"context"
	"fmt"
	"time"

	rabbitDelivery "sg-console-srv/internal/actionlog/delivery/rabbitmq"
	"sg-console-srv/pkg/rabbitmq"
)

// ConsumeActions declares the topology and starts consuming action events in the background.
func (c *consumer) ConsumeActions(ctx context.Context) error {
	if err := c.declare(); err != nil {
		return err
	}

	go c.run(ctx)

	c.l.Infof(ctx, "Consuming %s from %s", c.queue, c.exchange)
	return nil
}

func (c *consumer) declare() error {
	if err := c.ch.ExchangeDeclare(rabbitmq.ExchangeArgs{
		Name:    c.exchange,
		Type:    rabbitmq.ExchangeTypeTopic,
		Durable: true,
	}); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", c.exchange, err)
	}

	if _, err := c.ch.QueueDeclare(rabbitmq.QueueArgs{
		Name:    c.queue,
		Durable: true,
	}); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", c.queue, err)
	}

	if err := c.ch.QueueBind(rabbitmq.QueueBindArgs{
		Queue:      c.queue,
		Exchange:   c.exchange,
		RoutingKey: rabbitDelivery.BindingKey,
	}); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", c.queue, err)
	}

	if err := c.ch.Qos(rabbitDelivery.PrefetchCount); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}
	return nil
}

// run resubscribes whenever the delivery stream ends, until ctx is done.
func (c *consumer) run(ctx context.Context) {
	for {
		deliveries, err := c.ch.Consume(rabbitmq.ConsumeArgs{Queue: c.queue})
		if err != nil {
			c.l.Errorf(ctx, "actionlog.delivery.rabbitmq.consumer.run: Consume error: %v", err)
		} else {
			c.drain(ctx, deliveries)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.retryDelay):
		}

		// The topology may be gone if the broker restarted.
		if err := c.declare(); err != nil {
			c.l.Errorf(ctx, "actionlog.delivery.rabbitmq.consumer.run: %v", err)
		}
	}
}

func (c *consumer) drain(ctx context.Context, deliveries <-chan rabbitmq.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				c.l.Warnf(ctx, "actionlog.delivery.rabbitmq.consumer.drain: Delivery stream closed, resubscribing")
				return
			}
			c.process(ctx, d)
		}
	}
}
