package badgerfx

import (
	"strings"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// zapLogger routes badger's printf-style output into zap. Badger terminates
// most messages with a newline, which is dropped.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newLogger(l *zap.Logger) *zapLogger {
	return &zapLogger{
		sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

func (l *zapLogger) Debugf(format string, a ...any) {
	l.sugar.Debugf(trim(format), a...)
}

func (l *zapLogger) Errorf(format string, a ...any) {
	l.sugar.Errorf(trim(format), a...)
}

// Infof is demoted to debug, badger is chatty at info level.
func (l *zapLogger) Infof(format string, a ...any) {
	l.sugar.Debugf(trim(format), a...)
}

func (l *zapLogger) Warningf(format string, a ...any) {
	l.sugar.Warnf(trim(format), a...)
}

func trim(format string) string {
	return strings.TrimRight(format, "\n")
}

var _ badger.Logger = (*zapLogger)(nil)
