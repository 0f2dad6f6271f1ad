package arenabridge

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger   = zap.NewNop()
	loggerMu sync.RWMutex
)

// Logger returns the library's logger instance.
// It is a no-op logger by default.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger replaces the library's logger. Passing nil restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}
