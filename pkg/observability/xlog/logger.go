package xlog

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"
)

var (
	_ Logger          = (*xlogger)(nil)
	_ LoggerWithLevel = (*xlogger)(nil)
)

// xlogger Logger 接口的实现
type xlogger struct {
	handler    slog.Handler
	levelVar   *slog.LevelVar
	onError    func(error)
	errorCount *atomic.Uint64 // 派生 logger 共享
	addSource  bool
	inOnError  *atomic.Bool // 防止 onError 递归，派生 logger 共享
}

// log 构造记录并交给 handler。
//
// skip=3: Callers → log → Debug/Info/…/Log → 调用方。
//
//go:noinline
func (l *xlogger) log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	if !l.handler.Enabled(ctx, level) {
		return
	}

	var pc uintptr
	if l.addSource {
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		pc = pcs[0]
	}

	r := slog.NewRecord(time.Now(), level, msg, pc)
	r.AddAttrs(attrs...)

	if err := l.handler.Handle(ctx, r); err != nil {
		l.handleError(err)
	}
}

// handleError 计数并回调 onError。
//
// 回调期间再次出错只计数；回调 panic 被隔离，不影响调用方。
func (l *xlogger) handleError(err error) {
	l.errorCount.Add(1)
	if l.onError == nil || !l.inOnError.CompareAndSwap(false, true) {
		return
	}
	defer l.inOnError.Store(false)
	defer func() {
		if recover() != nil {
			l.errorCount.Add(1)
		}
	}()
	l.onError(err)
}

// Debug 记录 Debug 级别日志
func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, msg, attrs)
}

// Info 记录 Info 级别日志
func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, msg, attrs)
}

// Warn 记录 Warn 级别日志
func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelWarn, msg, attrs)
}

// Error 记录 Error 级别日志
func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelError, msg, attrs)
}

// Log 以指定级别记录日志
func (l *xlogger) Log(ctx context.Context, level Level, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.Level(level), msg, attrs)
}

func (l *xlogger) derive(h slog.Handler) *xlogger {
	return &xlogger{
		handler:    h,
		levelVar:   l.levelVar,
		onError:    l.onError,
		errorCount: l.errorCount,
		addSource:  l.addSource,
		inOnError:  l.inOnError,
	}
}

// With 返回带额外属性的派生 Logger
func (l *xlogger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	return l.derive(l.handler.WithAttrs(attrs))
}

// WithGroup 返回带分组的派生 Logger
func (l *xlogger) WithGroup(name string) Logger {
	if name == "" {
		return l
	}
	return l.derive(l.handler.WithGroup(name))
}

// SetLevel 动态设置日志级别
func (l *xlogger) SetLevel(level Level) {
	l.levelVar.Set(slog.Level(level))
}

// GetLevel 获取当前日志级别
func (l *xlogger) GetLevel() Level {
	return Level(l.levelVar.Level())
}

// Enabled 检查指定级别是否启用
func (l *xlogger) Enabled(ctx context.Context, level Level) bool {
	return l.handler.Enabled(ctx, slog.Level(level))
}

// ErrorCount 返回 handler 写入失败的累计次数。
func (l *xlogger) ErrorCount() uint64 {
	return l.errorCount.Load()
}
