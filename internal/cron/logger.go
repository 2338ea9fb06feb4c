package cron

import (
	"fmt"

	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type cronLogger struct {
	log logger.ZapLogger
}

// NewLogger adapts ZapLogger to cron.Logger.
func NewLogger(log logger.ZapLogger) cron.Logger {
	return &cronLogger{log: log}
}

func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, fields(keysAndValues)...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append(fields(keysAndValues), zap.Error(err))...)
}

func fields(kv []interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, zap.Any(fmt.Sprint(kv[i]), kv[i+1]))
	}
	return out
}
