package logger

import (
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Service   string
	Env       string
	Level     string
	AddSource bool
}

// New builds the process-wide structured logger. JSON output everywhere
// except dev, where a text handler is easier to read.
func New(opts Options) *slog.Logger {
	level := parseLevel(opts.Level)

	ho := &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.AddSource,
	}

	var h slog.Handler
	if strings.EqualFold(opts.Env, "dev") {
		h = slog.NewTextHandler(os.Stdout, ho)
	} else {
		h = slog.NewJSONHandler(os.Stdout, ho)
	}

	base := slog.New(h).With(
		"service", opts.Service,
		"env", opts.Env,
	)

	slog.SetDefault(base)
	return base
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
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
