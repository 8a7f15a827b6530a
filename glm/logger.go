package glm

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled returns false, so disabled logging
// never formats anything.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger of the package. By default glm produces no
// log output. Pass nil to restore the silent default.
//
// Log levels used by glm:
//   - [slog.LevelInfo]: configuration changes
//   - [slog.LevelWarn]: violated preconditions, only with the glmdebug build tag
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}

	loggerPtr.Store(l)
}

// Logger returns the current logger of the package.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}

	// package initialization has not reached init() yet
	return slog.New(nopHandler{})
}
