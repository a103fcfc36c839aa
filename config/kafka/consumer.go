package kafka

import (
	"fmt"
	"sync"

	"sg-console-srv/config"
	"sg-console-srv/pkg/kafka"
)

var (
	consumerInstance kafka.IConsumer
	consumerMu       sync.Mutex
)

// ConnectConsumer returns the shared action-log consumer group, joining kafka.group_id.
func ConnectConsumer(cfg config.KafkaConfig) (kafka.IConsumer, error) {
	consumerMu.Lock()
	defer consumerMu.Unlock()

	if consumerInstance != nil {
		return consumerInstance, nil
	}
	if cfg.GroupID == "" {
		return nil, fmt.Errorf("kafka.group_id is required for the consumer")
	}

	c, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka consumer: %w", err)
	}

	consumerInstance = c
	return consumerInstance, nil
}

// DisconnectConsumer closes the shared consumer group.
func DisconnectConsumer() error {
	consumerMu.Lock()
	defer consumerMu.Unlock()

	if consumerInstance == nil {
		return nil
	}
	err := consumerInstance.Close()
	consumerInstance = nil
	return err
}
