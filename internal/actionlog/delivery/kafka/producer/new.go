package producer

import (
	"sg-console-srv/internal/actionlog"
	pkgKafka "sg-console-srv/pkg/kafka"
	"sg-console-srv/pkg/log"
)

// Producer interface for actionlog domain
type Producer interface {
	actionlog.Producer
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new actionlog producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
