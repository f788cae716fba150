//go:build !nogpu

package gpu

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/thickline"
)

// logger follows thickline.SetLogger through OnLoggerChange.
var logger atomic.Pointer[slog.Logger]

func init() {
	thickline.OnLoggerChange(func(l *slog.Logger) { logger.Store(l) })
}

func slogger() *slog.Logger { return logger.Load() }
