package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/actionlog/delivery"
	"sg-console-srv/pkg/rabbitmq"
)

// process acks a delivery once it is stored or skipped. A failed store is requeued after
// retryDelay so an unavailable database does not spin the queue.
func (c *consumer) process(ctx context.Context, d rabbitmq.Delivery) {
	if err := c.handleActionMessage(ctx, d); err != nil {
		c.l.Errorf(ctx, "actionlog.delivery.rabbitmq.consumer.process: Failed to process action message: %v", err)
		select {
		case <-ctx.Done():
		case <-time.After(c.retryDelay):
		}
		if nackErr := d.Nack(false, true); nackErr != nil {
			c.l.Errorf(ctx, "actionlog.delivery.rabbitmq.consumer.process: Nack error: %v", nackErr)
		}
		return
	}

	if err := d.Ack(false); err != nil {
		c.l.Errorf(ctx, "actionlog.delivery.rabbitmq.consumer.process: Ack error: %v", err)
	}
}

// handleActionMessage decodes one event and stores it. Malformed messages are skipped.
func (c *consumer) handleActionMessage(ctx context.Context, d rabbitmq.Delivery) error {
	c.l.Debugf(ctx, "actionlog.delivery.rabbitmq.consumer.handleActionMessage: Processing message %d (%s)",
		d.DeliveryTag, d.RoutingKey)

	var message delivery.ActionMessage
	if err := json.Unmarshal(d.Body, &message); err != nil {
		c.l.Warnf(ctx, "actionlog.delivery.rabbitmq.consumer.handleActionMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	if err := c.uc.Store(ctx, message.ToEvent()); err != nil {
		if errors.Is(err, actionlog.ErrInvalidEvent) {
			c.l.Warnf(ctx, "actionlog.delivery.rabbitmq.consumer.handleActionMessage: Invalid event %q (skipping)", message.ID)
			return nil
		}
		return fmt.Errorf("usecase error: %w", err)
	}

	return nil
}
