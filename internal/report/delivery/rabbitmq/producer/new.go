package producer

import (
	"time"

	"insight-srv/internal/report"
	"insight-srv/pkg/encrypter"
	"insight-srv/pkg/log"
	pkgRabbit "insight-srv/pkg/rabbitmq"
	"insight-srv/pkg/scope"
)

const defaultScopeTTL = time.Hour

type Producer interface {
	report.Publisher
}

type implProducer struct {
	l         log.Logger
	ch        pkgRabbit.IChannel
	scopeMgr  scope.Manager
	encrypter encrypter.Encrypter
	scopeTTL  time.Duration
}

// New creates a producer of export jobs. The channel must have the report
// topology declared.
func New(l log.Logger, ch pkgRabbit.IChannel, scopeMgr scope.Manager, enc encrypter.Encrypter, scopeTTL time.Duration) Producer {
	if scopeTTL <= 0 {
		scopeTTL = defaultScopeTTL
	}
	return &implProducer{
		l:         l,
		ch:        ch,
		scopeMgr:  scopeMgr,
		encrypter: enc,
		scopeTTL:  scopeTTL,
	}
}
