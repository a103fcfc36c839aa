package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sg-console-srv/config"
	"sg-console-srv/config/kafka"
	"sg-console-srv/config/postgre"
	"sg-console-srv/config/rabbitmq"
	"sg-console-srv/internal/consumer"
	"sg-console-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Action Log Consumer Service...")

	// PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect()
	logger.Info(ctx, "PostgreSQL client initialized")

	srvCfg := consumer.Config{
		Logger:     logger,
		Transport:  cfg.Events.Transport,
		PostgresDB: postgresDB,
	}

	switch cfg.Events.Transport {
	case config.TransportRabbitMQ:
		conn, err := rabbitmq.Connect(logger, cfg.RabbitMQ)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
			return
		}
		defer rabbitmq.Disconnect()

		ch, err := conn.Channel()
		if err != nil {
			logger.Errorf(ctx, "Failed to open RabbitMQ channel: %v", err)
			return
		}
		srvCfg.Channel = ch
		srvCfg.Exchange = cfg.RabbitMQ.Exchange
		srvCfg.Queue = cfg.RabbitMQ.Queue
		logger.Infof(ctx, "RabbitMQ queue %s initialized", cfg.RabbitMQ.Queue)
	default:
		group, err := kafka.ConnectConsumer(cfg.Kafka)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Kafka consumer group: %v", err)
			return
		}
		defer kafka.DisconnectConsumer()
		srvCfg.Group = group
		srvCfg.Topic = cfg.Kafka.Topic
		logger.Infof(ctx, "Kafka consumer group %s initialized", cfg.Kafka.GroupID)
	}

	// Consumer server
	srv, err := consumer.New(srvCfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
