package main

import (
	"context"
	"fmt"
	"time"

	"sg-console-srv/config"
	configKafka "sg-console-srv/config/kafka"
	configMinIO "sg-console-srv/config/minio"
	configPostgre "sg-console-srv/config/postgre"
	configRabbitMQ "sg-console-srv/config/rabbitmq"
	configRedis "sg-console-srv/config/redis"
	"sg-console-srv/internal/httpserver"
	pkgKafka "sg-console-srv/pkg/kafka"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/rabbitmq"
	"sg-console-srv/pkg/sgsclient"
)

// @title       Storage Gateway Console API
// @description JSON backend of the storage gateway management console.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey AuthToken
// @in header
// @name X-Auth-Token
// @description Storage gateway token, forwarded as is.
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect()
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize the action event bus (optional)
	var (
		kafkaProducer pkgKafka.IProducer
		rabbitChannel rabbitmq.IChannel
	)
	switch cfg.Events.Transport {
	case config.TransportRabbitMQ:
		conn, err := configRabbitMQ.Connect(logger, cfg.RabbitMQ)
		if err != nil {
			logger.Warnf(ctx, "RabbitMQ not available (optional): %v", err)
			break
		}
		defer configRabbitMQ.Disconnect()

		rabbitChannel, err = conn.Channel()
		if err != nil {
			logger.Warnf(ctx, "RabbitMQ channel not available (optional): %v", err)
			rabbitChannel = nil
			break
		}
		defer rabbitChannel.Close()
		logger.Infof(ctx, "RabbitMQ publisher initialized for exchange %s", cfg.RabbitMQ.Exchange)
	default:
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Warnf(ctx, "Kafka producer not available (optional): %v", err)
			kafkaProducer = nil
			break
		}
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	// 6. Initialize MinIO (optional)
	minioClient, err := configMinIO.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Warnf(ctx, "MinIO not available (optional): %v", err)
		minioClient = nil
	} else {
		defer configMinIO.Disconnect()
		logger.Infof(ctx, "MinIO connected, exports go to bucket %s", cfg.MinIO.Bucket)
	}

	// 7. Initialize storage gateway client
	sgs := sgsclient.New(sgsclient.SGSConfig{
		BaseURL:  cfg.SGS.URL,
		Insecure: cfg.SGS.Insecure,
		Timeout:  time.Duration(cfg.SGS.Timeout) * time.Second,
		Retries:  cfg.SGS.Retries,
	})
	logger.Infof(ctx, "Storage gateway client initialized for %s", cfg.SGS.URL)

	// 8. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		SGS: sgs,

		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		KafkaProducer: kafkaProducer,
		RabbitChannel: rabbitChannel,

		MinIOClient: minioClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
