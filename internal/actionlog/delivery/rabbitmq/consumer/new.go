package consumer

import (
	"context"
	"fmt"
	"time"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/rabbitmq"
)

// Config holds the configuration for the action log consumer
type Config struct {
	Logger     log.Logger
	Channel    rabbitmq.IChannel
	Exchange   string
	Queue      string
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
	ch         rabbitmq.IChannel
	exchange   string
	queue      string
	uc         actionlog.UseCase
	retryDelay time.Duration
}

// New creates a new action log consumer
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Channel == nil {
		return nil, fmt.Errorf("channel is required")
	}
	if cfg.Exchange == "" {
		return nil, fmt.Errorf("exchange is required")
	}
	if cfg.Queue == "" {
		return nil, fmt.Errorf("queue is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = rabbitmq.DefaultRetryDelay
	}

	return &consumer{
		l:          cfg.Logger,
		ch:         cfg.Channel,
		exchange:   cfg.Exchange,
		queue:      cfg.Queue,
		uc:         cfg.UseCase,
		retryDelay: cfg.RetryDelay,
	}, nil
}

// Close closes the channel
func (c *consumer) Close() error {
	if err := c.ch.Close(); err != nil {
		return fmt.Errorf("failed to close action log channel: %w", err)
	}
	return nil
}
