package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		SGS:      SGSConfig{URL: "http://sgs:8975/v1", PageSize: 20},
		Postgres: PostgresConfig{Host: "localhost", Port: 5432, User: "postgres", DBName: "postgres"},
		Redis:    RedisConfig{Host: "localhost", Port: 6379, LookupTTL: 30 * time.Second},
		Events:   EventsConfig{Transport: TransportKafka},
		Kafka:    KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "sg-console.actions"},
		RabbitMQ: RabbitMQConfig{URL: "amqp://localhost:5672/", Exchange: "sg-console.actions", Queue: "sg-console.action-log"},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validate(validConfig()))

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing sgs url", func(c *Config) { c.SGS.URL = "" }, "sgs.url is required"},
		{"negative retries", func(c *Config) { c.SGS.Retries = -1 }, "sgs.retries must not be negative"},
		{"zero page size", func(c *Config) { c.SGS.PageSize = 0 }, "sgs.page_size must be greater than 0"},
		{"zero lookup ttl", func(c *Config) { c.Redis.LookupTTL = 0 }, "redis.lookup_ttl must be greater than 0"},
		{"no brokers", func(c *Config) { c.Kafka.Brokers = nil }, "kafka.brokers must have at least one value"},
		{"no topic", func(c *Config) { c.Kafka.Topic = "" }, "kafka.topic is required"},
		{"unknown transport", func(c *Config) { c.Events.Transport = "nats" }, `events.transport must be "kafka" or "rabbitmq"`},
		{"rabbitmq without url", func(c *Config) {
			c.Events.Transport = TransportRabbitMQ
			c.RabbitMQ.URL = ""
		}, "rabbitmq.url is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SGS_URL", "http://sgs.local:8975/v1")
	t.Setenv("SGS_PAGE_SIZE", "50")
	t.Setenv("REDIS_LOOKUP_TTL", "45s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://sgs.local:8975/v1", cfg.SGS.URL)
	assert.Equal(t, 50, cfg.SGS.PageSize)
	assert.Equal(t, 45*time.Second, cfg.Redis.LookupTTL)
	assert.True(t, cfg.SGS.Insecure)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, TransportKafka, cfg.Events.Transport)
}

func TestValidate_RabbitMQIgnoresKafka(t *testing.T) {
	cfg := validConfig()
	cfg.Events.Transport = TransportRabbitMQ
	cfg.Kafka = KafkaConfig{}

	assert.NoError(t, validate(cfg))
}
