package internal

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	outputMu       sync.Mutex
	logFile        *os.File
	logPath        string
	consoleLogging = true

	setupOnce sync.Once
	sink      = &logSink{}

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// logSink lets the destination change after the loggers are built.
type logSink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *logSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.w == nil {
		return len(p), nil
	}
	return s.w.Write(p)
}

func (s *logSink) set(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Takes effect on the next
// ApplyLogOutput, or when logging starts.
func SetLogPath(path string) {
	outputMu.Lock()
	logPath = path
	outputMu.Unlock()
}

// SetConsoleLogging controls whether records are also written to stderr.
// Terminal hosts turn it off so logs do not draw over the screen.
func SetConsoleLogging(enabled bool) {
	outputMu.Lock()
	consoleLogging = enabled
	outputMu.Unlock()
}

// SetLogOutput replaces the log destination. Mostly useful in tests.
func SetLogOutput(w io.Writer) {
	setup()
	sink.set(w)
}

// ApplyLogOutput points the loggers at the configured console and file
// destinations. Loggers built earlier switch over; a previously opened log
// file is closed.
func ApplyLogOutput() error {
	setupOnce.Do(func() {})
	return openOutput()
}

func setup() {
	setupOnce.Do(func() {
		_ = openOutput()
	})
}

func openOutput() error {
	outputMu.Lock()
	defer outputMu.Unlock()

	var writers []io.Writer
	if consoleLogging {
		writers = append(writers, os.Stderr)
	}

	var f *os.File
	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		var err error
		f, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
	}

	switch len(writers) {
	case 0:
		sink.set(io.Discard)
	case 1:
		sink.set(writers[0])
	default:
		sink.set(io.MultiWriter(writers...))
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(sink, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// GetInternalLogger returns the logger used for library diagnostics.
// It defaults to LevelError so stack tracing stays quiet unless asked for.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelError)

		setup()

		handler := slog.NewJSONHandler(sink, &slog.HandlerOptions{
			Level:     internalLevelVar,
			AddSource: false,
		})
		internalLogger = slog.New(handler)
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel converts a level name to slog.Level, defaulting to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	outputMu.Lock()
	defer outputMu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
