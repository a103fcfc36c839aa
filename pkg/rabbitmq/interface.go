package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"sg-console-srv/pkg/log"
)

// IRabbitMQ is a connection that redials after the broker drops it. Implementations are
// safe for concurrent use.
type IRabbitMQ interface {
	Channel() (IChannel, error)
	IsReady() bool
	Close() error
}

// IChannel is a channel that is reopened after its connection is redialed. Deliveries
// returned by Consume end when the channel is replaced, so consumers must resubscribe.
type IChannel interface {
	ExchangeDeclare(exc ExchangeArgs) error
	QueueDeclare(queue QueueArgs) (amqp.Queue, error)
	QueueBind(queueBind QueueBindArgs) error
	Qos(prefetchCount int) error
	Publish(ctx context.Context, publish PublishArgs) error
	Consume(consume ConsumeArgs) (<-chan amqp.Delivery, error)
	Close() error
}

// NewRabbitMQ dials url, retrying until cfg.DialTimeout elapses.
func NewRabbitMQ(l log.Logger, cfg Config) (IRabbitMQ, error) {
	if cfg.URL == "" {
		return nil, ErrURLRequired
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = DefaultDialTimeout
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}

	conn := &connectionImpl{l: l, cfg: cfg}
	if err := conn.connect(); err != nil {
		return nil, err
	}
	return conn, nil
}
