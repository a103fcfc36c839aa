package producer

import (
	"fmt"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/rabbitmq"
)

// Producer interface for actionlog domain
type Producer interface {
	actionlog.Producer
}

type implProducer struct {
	l        log.Logger
	ch       rabbitmq.IChannel
	exchange string
}

// New declares the durable topic exchange and returns a producer publishing to it.
func New(l log.Logger, ch rabbitmq.IChannel, exchange string) (Producer, error) {
	if err := ch.ExchangeDeclare(rabbitmq.ExchangeArgs{
		Name:    exchange,
		Type:    rabbitmq.ExchangeTypeTopic,
		Durable: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &implProducer{
		l:        l,
		ch:       ch,
		exchange: exchange,
	}, nil
}
