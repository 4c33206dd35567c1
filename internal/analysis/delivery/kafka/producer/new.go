package producer

import (
	"insight-srv/internal/analysis"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
)

type Producer interface {
	analysis.Publisher
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a producer that publishes on the topic the IProducer was built for.
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
