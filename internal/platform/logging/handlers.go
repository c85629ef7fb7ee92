package logging

import (
	"context"
	"errors"
	"log/slog"
)

// tee copies each record to the console sink and the rolling file sink.
type tee []slog.Handler

func (t tee) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (t tee) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	var errs []error

	for _, h := range t {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}

	return errors.Join(errs...)
}

func (t tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (t tee) WithGroup(name string) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (t tee) each(fn func(slog.Handler) slog.Handler) tee {
	out := make(tee, len(t))
	for i, h := range t {
		out[i] = fn(h)
	}

	return out
}

// scrubber runs the redactor over attrs for sinks without ReplaceAttr support,
// which is the charm console printer.
type scrubber struct {
	next   slog.Handler
	redact func(groups []string, a slog.Attr) slog.Attr
	groups []string
}

func (s *scrubber) Enabled(ctx context.Context, level slog.Level) bool {
	return s.next.Enabled(ctx, level)
}

func (s *scrubber) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(s.redact(s.groups, a))
		return true
	})

	return s.next.Handle(ctx, out)
}

func (s *scrubber) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		clean = append(clean, s.redact(s.groups, a))
	}

	return &scrubber{next: s.next.WithAttrs(clean), redact: s.redact, groups: s.groups}
}

func (s *scrubber) WithGroup(name string) slog.Handler {
	groups := append(append([]string(nil), s.groups...), name)
	return &scrubber{next: s.next.WithGroup(name), redact: s.redact, groups: groups}
}
