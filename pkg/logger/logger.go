// Package logger holds the process-wide structured logger used by the
// idtheory tools. The library core never logs; generation is a total
// operation with no I/O, so diagnostics belong to the callers that opt in.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	globalMu     sync.RWMutex
	globalLogger = zap.NewNop()
)

// Logger returns the global structured logger singleton.
func Logger() *zap.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetLogger replaces the global structured logger singleton.
//
// Passing nil resets the logger to a no-op implementation.
func SetLogger(next *zap.Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if next == nil {
		globalLogger = zap.NewNop()
		return
	}
	globalLogger = next
}
