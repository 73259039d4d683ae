package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogFile = "listview.log"

var (
	logPath string
	logFile *os.File

	sinkOnce sync.Once
	sink     io.Writer = os.Stdout

	appLog      = newLazyLogger()
	internalLog = newLazyLogger()
)

// lazyLogger builds its slog.Logger on first use so SetLogPath can run before it.
type lazyLogger struct {
	once   sync.Once
	level  slog.LevelVar
	logger *slog.Logger
}

func newLazyLogger() *lazyLogger {
	return &lazyLogger{}
}

func (l *lazyLogger) get() *slog.Logger {
	l.once.Do(func() {
		openSink()
		l.logger = slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{
			Level: &l.level,
		}))
	})
	return l.logger
}

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created when the log is first opened.
// An empty path keeps logging on stdout only.
func SetLogPath(path string) {
	logPath = path
}

// LogPath returns the configured log file path.
func LogPath() string {
	return logPath
}

// DefaultLogPath returns the log path used by the demo when none is configured.
func DefaultLogPath() string {
	return filepath.Join("logs", defaultLogFile)
}

func openSink() {
	sinkOnce.Do(func() {
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, stay on stdout
			return
		}

		logFile = f
		sink = io.MultiWriter(os.Stdout, logFile)
	})
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	return appLog.get()
}

// GetInternalLogger returns the logger used by the framework itself.
func GetInternalLogger() *slog.Logger {
	return internalLog.get()
}

func SetLogLevel(level slog.Level) {
	appLog.get()
	appLog.level.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLog.get()
	internalLog.level.Set(level)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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
	if logFile != nil {
		logFile.Close()
	}
}
