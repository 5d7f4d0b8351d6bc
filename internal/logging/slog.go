package logging

import (
	"context"
	"io"
	"log/slog"
)

type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}

// New builds a Logger writing to w in the requested format. Unknown formats
// fall back to JSON.
func New(format Format, w io.Writer) (Logger, error) {
	switch format {
	case FormatZap:
		z, err := NewZapProduction()
		if err != nil {
			return nil, err
		}
		return z, nil
	case FormatText:
		return NewSlogLogger(slog.New(slog.NewTextHandler(w, nil))), nil
	default:
		return NewSlogLogger(slog.New(slog.NewJSONHandler(w, nil))), nil
	}
}
