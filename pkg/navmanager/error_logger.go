package navmanager

import (
	"log/slog"

	"github.com/BrandonKowalski/navmanager/pkg/navmanager/internal"
)

// NavigationErrorLogger receives navigation errors for reporting.
// Implementations must not panic or block navigation; failures in the
// underlying sink are theirs to swallow.
type NavigationErrorLogger interface {
	LogError(err *NavigationError)
}

// NavigationErrorLoggerFunc adapts a plain function to NavigationErrorLogger.
type NavigationErrorLoggerFunc func(err *NavigationError)

// LogError calls f(err).
func (f NavigationErrorLoggerFunc) LogError(err *NavigationError) {
	f(err)
}

// DefaultNavigationErrorLogger writes navigation errors to a slog logger.
type DefaultNavigationErrorLogger struct {
	logger *slog.Logger
}

// NewDefaultNavigationErrorLogger creates a logger backed by l.
// A nil l uses the package logger returned by GetLogger.
func NewDefaultNavigationErrorLogger(l *slog.Logger) *DefaultNavigationErrorLogger {
	return &DefaultNavigationErrorLogger{logger: l}
}

// LogError records err at error level. Panics from the handler are dropped.
func (d *DefaultNavigationErrorLogger) LogError(err *NavigationError) {
	if err == nil {
		return
	}
	defer func() {
		_ = recover()
	}()

	l := d.logger
	if l == nil {
		l = internal.GetLogger()
	}
	l.Error("Navigation error",
		"kind", err.Kind.String(),
		"route", err.Route,
		"error", err.Error(),
	)
}

// safeLog calls logger.LogError and contains any panic, so a broken custom
// logger cannot take the resolver down with it.
func safeLog(logger NavigationErrorLogger, err *NavigationError) {
	if logger == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			internal.GetInternalLogger().Error("Navigation error logger panicked", "route", err.Route, "panic", r)
		}
	}()
	logger.LogError(err)
}
