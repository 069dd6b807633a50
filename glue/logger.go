package glue

import (
	"sync"

	"go.uber.org/zap"
)

var (
	nopLogger = zap.NewNop()
	logger    = nopLogger
	loggerMu  sync.RWMutex
)

// Logger returns the package logger. It is a no-op logger until SetLogger is called.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger installs l as the package logger. A nil l restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = nopLogger
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}
