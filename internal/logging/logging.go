// Package logging configures the process-wide slog logger. Output goes to a
// file because the terminal belongs to the UI.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Field keys shared across packages.
const (
	FieldRequestID = "request_id"
	FieldMode      = "mode"
	FieldProvider  = "provider"
	FieldModel     = "model"
	FieldError     = "error"
	FieldLatencyMS = "latency_ms"
	FieldRaw       = "raw"
	FieldPath      = "path"
)

// Init opens path for appending and installs a JSON handler writing to it as
// the default logger. The returned func closes the file.
func Init(path string, level slog.Level) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	slog.SetDefault(New(f, level))
	slog.Info("log file opened", FieldPath, path)

	return func() error {
		_ = f.Sync()
		return f.Close()
	}, nil
}

// New returns a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError+1)
}

// ParseLevel maps a config string to a level, defaulting to info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

type requestIDKey struct{}

// WithRequestID tags ctx with the id of the submission it serves.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext returns l annotated with the request id in ctx, if any.
func FromContext(ctx context.Context, l *slog.Logger) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	if id := RequestID(ctx); id != "" {
		return l.With(FieldRequestID, id)
	}
	return l
}
