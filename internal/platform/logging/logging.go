// Package logging builds the slog logger used across the engine and carries
// it through context so a validation run logs under one set of attributes.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("run_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "checking value")
//
// Failures are logged by the service that gives up on them:
//
//	logger.ErrorContext(ctx, "failed to validate work item",
//	    slog.String("operation", "Validate"),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

type handlerFunc func(io.Writer, *slog.HandlerOptions) slog.Handler

var handlers = map[string]handlerFunc{
	"json": func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewJSONHandler(w, o) },
	"text": func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewTextHandler(w, o) },
}

// New returns a logger writing to w. level is any name slog understands
// ("debug", "INFO", "warn+2"); anything else means info. format is "json" or
// "text"; anything else means json. Debug loggers include the call site.
// Attributes pass through the masq redaction filter.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	build, ok := handlers[strings.ToLower(format)]
	if !ok {
		build = handlers["json"]
	}

	return slog.New(build(w, &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}))
}

// OrDiscard returns logger, or a logger that drops everything when logger is
// nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
