package log

import "go.uber.org/zap"

// ZapConfig configures the zap logger.
type ZapConfig struct {
	Level        string
	Mode         string // production | development
	Encoding     string // json | console
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}
