package consumer

import (
	"context"
	"fmt"
	"time"

	"sg-console-srv/internal/actionlog"
	pkgKafka "sg-console-srv/pkg/kafka"
	"sg-console-srv/pkg/log"
)

// Config holds the configuration for the action log consumer
type Config struct {
	Logger     log.Logger
	Group      pkgKafka.IConsumer
	Topic      string
	UseCase    actionlog.UseCase
	RetryDelay time.Duration
}

// Consumer persists action events published by the API
type Consumer interface {
	ConsumeActions(ctx context.Context) error
	Close() error
}

type consumer struct {
	l          log.Logger
	group      pkgKafka.IConsumer
	topic      string
	uc         actionlog.UseCase
	retryDelay time.Duration
}

// New creates a new action log consumer
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Group == nil {
		return nil, fmt.Errorf("consumer group is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = pkgKafka.DefaultRetryDelay
	}

	return &consumer{
		l:          cfg.Logger,
		group:      cfg.Group,
		topic:      cfg.Topic,
		uc:         cfg.UseCase,
		retryDelay: cfg.RetryDelay,
	}, nil
}

// Close closes the consumer group
func (c *consumer) Close() error {
	if err := c.group.Close(); err != nil {
		return fmt.Errorf("failed to close action log group: %w", err)
	}
	return nil
}
