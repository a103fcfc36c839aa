package kafka

import (
	"fmt"
	"sync"

	"sg-console-srv/config"
	"sg-console-srv/pkg/kafka"
)

var (
	producerInstance kafka.IProducer
	producerMu       sync.Mutex
)

// ConnectProducer returns the shared action-event producer, creating it on first use.
// A failed attempt is not cached, so the next call retries.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance != nil {
		return producerInstance, nil
	}

	p, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	producerInstance = p
	return producerInstance, nil
}

// DisconnectProducer closes the shared producer.
func DisconnectProducer() error {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance == nil {
		return nil
	}
	err := producerInstance.Close()
	producerInstance = nil
	return err
}
