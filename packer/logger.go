package packer

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/binpack/template"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the packer package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the packer package's logger.
// This must be called before any codec operations.
func SetLogger(l *zap.Logger) {
	logger = l
}

func traceDirective(msg string, d template.Directive, offset int) {
	if ce := Logger().Check(zapcore.DebugLevel, msg); ce != nil {
		ce.Write(
			zap.String("directive", d.String()),
			zap.Stringer("op", d.Op),
			zap.Int("pos", d.Pos),
			zap.Int("offset", offset),
		)
	}
}
