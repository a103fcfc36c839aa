package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/actionlog/delivery"
)

// PublishAction publishes an action event keyed by resource id, so events of one
// resource keep their order within a partition.
func (p *implProducer) PublishAction(ctx context.Context, event actionlog.ActionEvent) error {
	body, err := json.Marshal(delivery.NewActionMessage(event))
	if err != nil {
		return fmt.Errorf("failed to marshal action event: %w", err)
	}

	if err := p.producer.Publish([]byte(event.ResourceID), body); err != nil {
		return fmt.Errorf("failed to publish action event: %w", err)
	}

	p.l.Debugf(ctx, "Published %s %s %s", event.Action, event.ResourceType, event.ResourceID)
	return nil
}
