package consumer

import (
	"context"
)

// ConsumeActions starts consuming action events in the background.
func (c *consumer) ConsumeActions(ctx context.Context) error {
	handler := &actionHandler{consumer: c}

	go func() {
		if err := c.group.ConsumeWithContext(ctx, []string{c.topic}, handler); err != nil {
			c.l.Errorf(ctx, "actionlog.delivery.kafka.consumer.ConsumeActions: Consumer error: %v", err)
		}
	}()

	go func() {
		for err := range c.group.Errors() {
			c.l.Errorf(ctx, "actionlog.delivery.kafka.consumer.ConsumeActions: Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.topic)
	return nil
}
