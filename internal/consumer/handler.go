package consumer

import (
	"context"
	"fmt"

	"sg-console-srv/config"
	"sg-console-srv/internal/actionlog"
	kafkaConsumer "sg-console-srv/internal/actionlog/delivery/kafka/consumer"
	rabbitConsumer "sg-console-srv/internal/actionlog/delivery/rabbitmq/consumer"
	actionlogPostgre "sg-console-srv/internal/actionlog/repository/postgre"
	actionlogUsecase "sg-console-srv/internal/actionlog/usecase"
)

// actionConsumer is implemented by the consumer of every transport.
type actionConsumer interface {
	ConsumeActions(ctx context.Context) error
	Close() error
}

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	actionLogConsumer actionConsumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	repo := actionlogPostgre.New(srv.postgresDB, srv.l)
	if err := repo.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate action log: %w", err)
	}

	// The consumer only stores events, it never publishes.
	uc := actionlogUsecase.New(srv.l, repo, nil, nil, actionlogUsecase.Config{})

	cons, err := srv.newActionConsumer(uc)
	if err != nil {
		return nil, fmt.Errorf("failed to create action log consumer: %w", err)
	}

	srv.l.Infof(ctx, "ActionLog domain initialized")

	return &domainConsumers{
		actionLogConsumer: cons,
	}, nil
}

func (srv *ConsumerServer) newActionConsumer(uc actionlog.UseCase) (actionConsumer, error) {
	if srv.transport == config.TransportRabbitMQ {
		return rabbitConsumer.New(rabbitConsumer.Config{
			Logger:   srv.l,
			Channel:  srv.channel,
			Exchange: srv.exchange,
			Queue:    srv.queue,
			UseCase:  uc,
		})
	}

	return kafkaConsumer.New(kafkaConsumer.Config{
		Logger:  srv.l,
		Group:   srv.group,
		Topic:   srv.topic,
		UseCase: uc,
	})
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.actionLogConsumer.ConsumeActions(ctx); err != nil {
		return fmt.Errorf("failed to start action log consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.actionLogConsumer != nil {
		if err := consumers.actionLogConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing action log consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
