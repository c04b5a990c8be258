package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var Level = &slog.LevelVar{}

// Setup installs the default logger, all messages go to dst.
func Setup(dst io.Writer, level slog.Level, noColor bool) {
	Level.Set(level)
	slog.SetDefault(slog.New(newHandler(dst, Level, noColor)))
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%q is not a valid log level", s)
	}
}
