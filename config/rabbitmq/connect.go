package rabbitmq

import (
	"fmt"
	"sync"

	"sg-console-srv/config"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/rabbitmq"
)

var (
	instance rabbitmq.IRabbitMQ
	mu       sync.Mutex
)

// Connect returns the shared action-event connection, dialing on first use.
// A failed attempt is not cached, so the next call retries.
func Connect(l log.Logger, cfg config.RabbitMQConfig) (rabbitmq.IRabbitMQ, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	conn, err := rabbitmq.NewRabbitMQ(l, rabbitmq.Config{URL: cfg.URL})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	instance = conn
	return instance, nil
}

// Disconnect closes the shared connection.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
