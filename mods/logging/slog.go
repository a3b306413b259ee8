package logging

import (
	"context"
	"fmt"
	"log/slog"
)

// Wrap returns a slog.Logger writing through l. filter, if not nil,
// drops the records it returns false for.
func Wrap(l Log, filter func(string, context.Context, slog.Record) bool) *slog.Logger {
	h, ok := l.(*levelLogger)
	if !ok {
		return slog.Default()
	}
	clone := *h
	clone.filter = filter
	return slog.New(&clone)
}

// Enabled reports whether the handler handles records at the given level.
func (ll *levelLogger) Enabled(ctx context.Context, level slog.Level) bool {
	switch {
	case level < slog.LevelInfo:
		return ll.DebugEnabled()
	case level < slog.LevelWarn:
		return ll.InfoEnabled()
	case level < slog.LevelError:
		return ll.WarnEnabled()
	default:
		return ll.ErrorEnabled()
	}
}

// Handle writes the record with its attributes as key=value tokens.
func (ll *levelLogger) Handle(ctx context.Context, r slog.Record) error {
	var lvl Level
	switch {
	case r.Level < slog.LevelInfo:
		lvl = LevelDebug
	case r.Level < slog.LevelWarn:
		lvl = LevelInfo
	case r.Level < slog.LevelError:
		lvl = LevelWarn
	default:
		lvl = LevelError
	}
	if ll.filter != nil && !ll.filter(ll.name, ctx, r) {
		return nil
	}
	args := []any{r.Message}
	for _, a := range ll.attrs {
		args = append(args, fmt.Sprintf("%v=%v", a.Key, a.Value))
	}
	r.Attrs(func(a slog.Attr) bool {
		args = append(args, fmt.Sprintf("%v=%v", a.Key, a.Value))
		return true
	})
	ll._log(lvl, 0, args)
	return nil
}

func (ll *levelLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	ret := *ll
	ret.attrs = append(append([]slog.Attr{}, ll.attrs...), attrs...)
	return &ret
}

// WithGroup switches to the logger of the given name.
func (ll *levelLogger) WithGroup(name string) slog.Handler {
	if name == "" {
		return ll
	}
	if r, ok := GetLog(name).(*levelLogger); ok {
		return r
	}
	return ll
}
