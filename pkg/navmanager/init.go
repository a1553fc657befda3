// Package navmanager provides named-route navigation for single-stack,
// push/pop UI flows.
//
// Callers register routes by name with a view factory, then drive a
// [router.Router] by name: ToNamed pushes, Back pops, OffNamed replaces the
// visible route and OffAll resets the stack to a new root. A [Manager]
// resolves whatever is on the stack to views and falls back to an
// [UnknownRouteHandler] for names that were never registered. Drawing the
// views is left to a host surface such as the run loop in package host or
// the bubbletea model in package tui.
package navmanager

import (
	"io"
	"log/slog"

	"github.com/BrandonKowalski/navmanager/pkg/navmanager/internal"
)

// Options configures logging and messages for the navmanager packages.
type Options struct {
	LogPath        string // Full path for log file including filename (creates parent directories)
	LogLevel       string // Application log level: debug, info, warn or error
	InternalDebug  bool   // Trace every stack mutation through the internal logger
	DisableConsole bool   // Do not write log records to stderr (terminal hosts)
	Locale         string // Language for built-in messages, e.g. "en" or "ko"
}

// Init applies options. It may be called after logging has started; the
// loggers switch to the new destinations.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	internal.SetConsoleLogging(!options.DisableConsole)
	if err := internal.ApplyLogOutput(); err != nil {
		return err
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if options.InternalDebug {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.Locale != "" {
		if err := internal.SetLocale(options.Locale); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Takes effect on the next Init.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput redirects all log records to w.
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLocale selects the language of built-in messages such as the
// unknown-route placeholder. Unsupported languages fall back to English.
func SetLocale(locale string) error {
	return internal.SetLocale(locale)
}
