package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type sourceFromLevelHandler struct {
	handler  slog.Handler
	minLevel slog.Level
}

// NewSourceFromLevelHandler wraps a handler so that source location is
// attached only to records at or above minLevel. The wrapped handler must
// be constructed with AddSource: false; this wrapper adds the source
// attribute itself for qualifying records.
func NewSourceFromLevelHandler(handler slog.Handler, minLevel slog.Level) slog.Handler {
	return &sourceFromLevelHandler{
		handler:  handler,
		minLevel: minLevel,
	}
}

func (h *sourceFromLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minLevel && r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: f.Function,
				File:     f.File,
				Line:     f.Line,
			}),
		})
	}

	return h.handler.Handle(ctx, r)
}

func (h *sourceFromLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceFromLevelHandler{
		handler:  h.handler.WithAttrs(attrs),
		minLevel: h.minLevel,
	}
}

func (h *sourceFromLevelHandler) WithGroup(name string) slog.Handler {
	return &sourceFromLevelHandler{
		handler:  h.handler.WithGroup(name),
		minLevel: h.minLevel,
	}
}

func (h *sourceFromLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
