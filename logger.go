package scale

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger      *zap.Logger
	loggerMutex sync.RWMutex
)

// Logger returns the package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerMutex.RLock()
	l := logger
	loggerMutex.RUnlock()
	if l != nil {
		return l
	}

	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the package's logger. A nil logger restores the no-op logger.
// Encoders and Decoders keep the logger they were created with.
func SetLogger(l *zap.Logger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	logger = l
}
