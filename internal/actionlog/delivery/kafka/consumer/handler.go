package consumer

import (
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

type actionHandler struct {
	consumer *consumer
}

func (h *actionHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *actionHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks a message only once it is stored. A failed store stops the claim
// after retryDelay without marking, so the next session resumes from that message.
func (h *actionHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for msg := range claim.Messages() {
		if err := h.consumer.handleActionMessage(ctx, msg); err != nil {
			h.consumer.l.Errorf(ctx, "actionlog.delivery.kafka.consumer.ConsumeClaim: Failed to process action message: %v", err)
			select {
			case <-ctx.Done():
			case <-time.After(h.consumer.retryDelay):
			}
			return fmt.Errorf("partition %d offset %d not stored: %w", msg.Partition, msg.Offset, err)
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
