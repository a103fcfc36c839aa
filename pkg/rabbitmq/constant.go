package rabbitmq

import (
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultRetryDelay  = 2 * time.Second
	DefaultDialTimeout = 20 * time.Second

	ContentTypePlainText = "text/plain"
	ContentTypeJSON      = "application/json"

	ExchangeTypeDirect = "direct"
	ExchangeTypeFanout = "fanout"
	ExchangeTypeTopic  = "topic"
)

// DeliveryModePersistent makes the broker write the message to disk.
const DeliveryModePersistent = amqp.Persistent
