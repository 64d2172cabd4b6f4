// Package obs contains observability utilities such as logging and metrics.
package obs

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the global structured logger used by the service.
//
// Logger is exported to allow other packages to use it for logging.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// ParseLevel maps a LOG_LEVEL value to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// InitLogger initializes the global Logger with a JSON handler on stdout.
// Every record carries the service name.
func InitLogger(service, level string) {
	InitLoggerTo(os.Stdout, service, level)
}

// InitLoggerTo is InitLogger with an explicit destination.
func InitLoggerTo(w io.Writer, service, level string) {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	Logger = slog.New(h).With("service", service)
}
