package egl

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/obinnaokechukwu/egl/internal/khrdebug"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger for the package and the debug message
// router. By default nothing is logged. Pass nil to restore that.
//
// Entry points log at debug level; a panicking debug callback is logged at
// error level.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
	khrdebug.Default().SetLogger(l)
}

func logger() *zap.Logger {
	return loggerPtr.Load()
}
