package consumer

import (
	"context"
	"database/sql"

	pkgKafka "sg-console-srv/pkg/kafka"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/rabbitmq"
)

// ConsumerServer persists action events published by the API.
type ConsumerServer struct {
	l         log.Logger
	transport string

	postgresDB *sql.DB

	// Kafka transport
	topic string
	group pkgKafka.IConsumer

	// RabbitMQ transport
	exchange string
	queue    string
	channel  rabbitmq.IChannel
}

// Config holds all dependencies for the consumer server
type Config struct {
	Logger    log.Logger
	Transport string

	PostgresDB *sql.DB

	Topic string
	Group pkgKafka.IConsumer

	Exchange string
	Queue    string
	Channel  rabbitmq.IChannel
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Infof(ctx, "Consumer Server is running (%s)", srv.transport)

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
