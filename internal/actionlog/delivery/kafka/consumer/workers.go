package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/actionlog/delivery"
)

// handleActionMessage decodes one event and stores it. Malformed messages are skipped.
func (c *consumer) handleActionMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	c.l.Debugf(ctx, "actionlog.delivery.kafka.consumer.handleActionMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message delivery.ActionMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "actionlog.delivery.kafka.consumer.handleActionMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	if err := c.uc.Store(ctx, message.ToEvent()); err != nil {
		if errors.Is(err, actionlog.ErrInvalidEvent) {
			c.l.Warnf(ctx, "actionlog.delivery.kafka.consumer.handleActionMessage: Invalid event %q (skipping)", message.ID)
			return nil
		}
		return fmt.Errorf("usecase error: %w", err)
	}

	return nil
}
