package maligui

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false so widget code pays
// nothing for its Debug calls in a silent build.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for maligui and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
// Records from a sub-package carry a "pkg" attribute naming it.
//
// Log levels used:
//   - [slog.LevelDebug]: stacker push/pop, injected presses, script steps,
//     window presses (pkg=ebitendev)
//   - [slog.LevelInfo]: font registry initialization, window start
//   - [slog.LevelWarn]: malformed fonts, failing input subscribers, debug-mode
//     tree limits
//
// Example:
//
//	maligui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
