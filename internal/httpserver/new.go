package httpserver

import (
	"database/sql"
	"errors"

	"sg-console-srv/config"
	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/lookup"
	pkgKafka "sg-console-srv/pkg/kafka"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/minio"
	"sg-console-srv/pkg/rabbitmq"
	pkgRedis "sg-console-srv/pkg/redis"
	"sg-console-srv/pkg/sgsclient"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Storage gateway
	sgs sgsclient.ISGS

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Messaging (optional, action events are dropped without it).
	// events.transport selects which one is used.
	kafkaProducer pkgKafka.IProducer
	rabbitChannel rabbitmq.IChannel

	// Object storage (optional, action log export is disabled without it)
	minioClient minio.MinIO

	// Shared usecases, built by setupCoreDomains
	actionLogUC actionlog.UseCase
	lookupUC    lookup.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Storage gateway
	SGS sgsclient.ISGS

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Messaging
	KafkaProducer pkgKafka.IProducer
	RabbitChannel rabbitmq.IChannel

	// Object storage
	MinIOClient minio.MinIO
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		sgs: cfg.SGS,

		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		kafkaProducer: cfg.KafkaProducer,
		rabbitChannel: cfg.RabbitChannel,

		minioClient: cfg.MinIOClient,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	if srv.sgs == nil {
		return errors.New("sgs client is required")
	}

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	return nil
}
