package log

import (
	"io"
	"log/slog"
	"os"
)

// New constructs a JSON slog.Logger on stderr preconfigured at info level
func New(service, env, version string) *slog.Logger {
	return NewWithLevel(service, env, version, slog.LevelInfo)
}

// NewWithLevel constructs a JSON slog.Logger on stderr at the provided level
func NewWithLevel(service, env, version string, lvl slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, service, env, version, lvl)
}

// NewWithWriter constructs a JSON slog.Logger writing to w. Stdout is left
// to command output
func NewWithWriter(
	w io.Writer, service, env, version string, lvl slog.Level,
) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})

	return slog.New(handler).With(
		slog.String("service", service),
		slog.String("env", env),
		slog.String("version", version))
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLevel maps a level name to its slog.Level, reporting whether the name
// was recognized
func ParseLevel(name string) (slog.Level, bool) {
	lvl, ok := levels[name]
	return lvl, ok
}
