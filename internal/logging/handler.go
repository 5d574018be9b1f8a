package logging

import (
	"context"
	"errors"
	"log/slog"
)

// ContextProvider returns attributes to stamp on every record, such as the
// session currently being journaled.
type ContextProvider func() []slog.Attr

// sessionHandler sends each record to every enabled sink, after adding the
// provider's attributes. A failing sink does not stop the others.
type sessionHandler struct {
	sinks    []slog.Handler
	provider ContextProvider
}

func newSessionHandler(provider ContextProvider, sinks ...slog.Handler) *sessionHandler {
	h := &sessionHandler{provider: provider}
	for _, s := range sinks {
		if s != nil {
			h.sinks = append(h.sinks, s)
		}
	}
	return h
}

func (h *sessionHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range h.sinks {
		if s.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *sessionHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.provider != nil {
		r = r.Clone()
		r.AddAttrs(h.provider()...)
	}
	var errs []error
	for _, s := range h.sinks {
		if !s.Enabled(ctx, r.Level) {
			continue
		}
		if err := s.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *sessionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })
}

func (h *sessionHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.derive(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })
}

func (h *sessionHandler) derive(f func(slog.Handler) slog.Handler) *sessionHandler {
	sinks := make([]slog.Handler, len(h.sinks))
	for i, s := range h.sinks {
		sinks[i] = f(s)
	}
	return &sessionHandler{sinks: sinks, provider: h.provider}
}
