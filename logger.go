package thickline

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// silent is installed until SetLogger is called and whenever it is passed nil.
var silent = slog.New(slog.DiscardHandler)

var (
	current atomic.Pointer[slog.Logger]

	hooksMu sync.RWMutex
	hooks   []func(*slog.Logger)
)

func init() {
	current.Store(silent)
}

// SetLogger installs the logger used by thickline and its gpu packages.
// Nothing is logged until it is called; nil switches logging off again.
//
// Levels:
//   - [slog.LevelDebug]: arena and GPU buffer (re)allocation, pipeline
//     creation, software frames
//   - [slog.LevelInfo]: GPU renderer creation
//   - [slog.LevelWarn]: releasing a line that holds no GPU buffers
//
// Example:
//
//	thickline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)

	hooksMu.RLock()
	fns := hooks
	hooksMu.RUnlock()
	for _, fn := range fns {
		fn(l)
	}
}

// Logger returns the installed logger. It is never nil.
func Logger() *slog.Logger {
	return current.Load()
}

// OnLoggerChange registers fn to receive every logger installed by
// SetLogger. fn is called once right away with the current logger.
func OnLoggerChange(fn func(*slog.Logger)) {
	if fn == nil {
		return
	}
	hooksMu.Lock()
	hooks = append(hooks, fn)
	hooksMu.Unlock()
	fn(Logger())
}
