package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/actionlog/delivery"
	rabbitDelivery "sg-console-srv/internal/actionlog/delivery/rabbitmq"
	"sg-console-srv/pkg/rabbitmq"
)

// PublishAction publishes a persistent action event routed by resource type and action.
func (p *implProducer) PublishAction(ctx context.Context, event actionlog.ActionEvent) error {
	body, err := json.Marshal(delivery.NewActionMessage(event))
	if err != nil {
		return fmt.Errorf("failed to marshal action event: %w", err)
	}

	if err := p.ch.Publish(ctx, rabbitmq.PublishArgs{
		Exchange:   p.exchange,
		RoutingKey: rabbitDelivery.RoutingKey(event.ResourceType, event.Action),
		Msg: rabbitmq.Publishing{
			ContentType:  rabbitmq.ContentTypeJSON,
			DeliveryMode: rabbitmq.DeliveryModePersistent,
			MessageId:    event.ID,
			Timestamp:    event.CreatedAt,
			Body:         body,
		},
	}); err != nil {
		return fmt.Errorf("failed to publish action event: %w", err)
	}

	p.l.Debugf(ctx, "Published %s %s %s", event.Action, event.ResourceType, event.ResourceID)
	return nil
}
