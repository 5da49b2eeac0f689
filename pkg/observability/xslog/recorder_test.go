package xslog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/omeyang/xops/pkg/observability/xlog"
)

type record struct {
	level xlog.Level
	msg   string
	attrs map[string]string
}

// recorder 记录所有调用的 xlog.Logger
type recorder struct {
	mu      sync.Mutex
	records []record
}

var _ xlog.Logger = (*recorder)(nil)

func (r *recorder) add(level xlog.Level, msg string, attrs []slog.Attr) {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value.String()
	}
	r.mu.Lock()
	r.records = append(r.records, record{level: level, msg: msg, attrs: m})
	r.mu.Unlock()
}

func (r *recorder) Debug(_ context.Context, msg string, attrs ...slog.Attr) {
	r.add(xlog.LevelDebug, msg, attrs)
}

func (r *recorder) Info(_ context.Context, msg string, attrs ...slog.Attr) {
	r.add(xlog.LevelInfo, msg, attrs)
}

func (r *recorder) Warn(_ context.Context, msg string, attrs ...slog.Attr) {
	r.add(xlog.LevelWarn, msg, attrs)
}

func (r *recorder) Error(_ context.Context, msg string, attrs ...slog.Attr) {
	r.add(xlog.LevelError, msg, attrs)
}

func (r *recorder) Log(_ context.Context, level xlog.Level, msg string, attrs ...slog.Attr) {
	r.add(level, msg, attrs)
}

func (r *recorder) With(...slog.Attr) xlog.Logger { return r }
func (r *recorder) WithGroup(string) xlog.Logger  { return r }

func (r *recorder) all() []record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]record(nil), r.records...)
}
