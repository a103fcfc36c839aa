package consumer

import (
	"fmt"

	"sg-console-srv/config"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:          cfg.Logger,
		transport:  cfg.Transport,
		postgresDB: cfg.PostgresDB,
		topic:      cfg.Topic,
		group:      cfg.Group,
		exchange:   cfg.Exchange,
		queue:      cfg.Queue,
		channel:    cfg.Channel,
	}
	if srv.transport == "" {
		srv.transport = config.TransportKafka
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *ConsumerServer) validate() error {
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}

	switch srv.transport {
	case config.TransportKafka:
		if srv.topic == "" {
			return fmt.Errorf("kafka topic is required")
		}
		if srv.group == nil {
			return fmt.Errorf("kafka consumer group is required")
		}
	case config.TransportRabbitMQ:
		if srv.exchange == "" || srv.queue == "" {
			return fmt.Errorf("rabbitmq exchange and queue are required")
		}
		if srv.channel == nil {
			return fmt.Errorf("rabbitmq channel is required")
		}
	default:
		return fmt.Errorf("unknown transport %q", srv.transport)
	}
	return nil
}
