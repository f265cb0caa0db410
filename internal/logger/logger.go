package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const loadIDKey ctxKey = "loadID"

// InitLogger installs a slog default logger writing to stdout.
func InitLogger(cfg Config) *slog.Logger {
	return InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs a slog default logger writing to w.
// Every record carries the service, version and environment attributes.
func InitLoggerWithWriter(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

// GenerateLoadID creates a new UUID identifying one registry load pass.
func GenerateLoadID() string {
	return uuid.NewString()
}

// WithLoadID returns a new context containing the load ID.
func WithLoadID(ctx context.Context, loadID string) context.Context {
	return context.WithValue(ctx, loadIDKey, loadID)
}

// LoadIDFromContext extracts the load ID from the context, if present.
func LoadIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(loadIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes the load_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := LoadIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyLoadID, id)
	}
	return slog.Default()
}
