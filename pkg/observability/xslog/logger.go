package xslog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/omeyang/xops/pkg/observability/xlog"
)

// 启停横幅
const (
	StartBanner = "Logging started, logging level mask=0x%x"
	StopBanner  = "Logging stopped, %s"
)

// ErrNilSink 未提供底层 xlog.Logger。
var ErrNilSink = errors.New("xslog: nil sink")

// Logger 按 [Policy] 过滤后写入 xlog.Logger。
//
// sink 自身的级别应设为 debug，否则会在策略之后再过滤一次。
type Logger struct {
	policy *Policy
	sink   xlog.Logger
	exit   func(int)
}

// Option 配置 [Logger]。
type Option func(*Logger)

// WithExit 替换 [Logger.Exit] 使用的退出函数，默认 os.Exit。
func WithExit(fn func(int)) Option {
	return func(l *Logger) {
		if fn != nil {
			l.exit = fn
		}
	}
}

// New 创建 Logger。policy 为 nil 时使用 [DefaultMask]。
func New(policy *Policy, sink xlog.Logger, opts ...Option) (*Logger, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	if policy == nil {
		policy = NewPolicy(DefaultMask)
	}
	l := &Logger{policy: policy, sink: sink, exit: os.Exit}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l, nil
}

// Policy 返回使用的策略。
func (l *Logger) Policy() *Policy { return l.policy }

// Log 在策略放行时按 [MapPriority] 的 severity 输出，返回是否输出。
//
// 服务自定义优先级额外附带 priority 属性（十六进制）。
func (l *Logger) Log(ctx context.Context, p Priority, msg string, attrs ...slog.Attr) bool {
	if !l.policy.Enabled(p) {
		return false
	}
	if p.IsService() {
		attrs = append(attrs[:len(attrs):len(attrs)], xlog.Priority(uint32(p)))
	}
	l.sink.Log(ctx, MapPriority(p).Level(), msg, attrs...)
	return true
}

// Once 在 mask 未抑制 id 时调用 [Logger.Log]，随后抑制 id。
//
// 返回是否进行了尝试；策略拒绝输出时 id 同样被抑制。mask 为 nil 时什么都不做。
func (l *Logger) Once(ctx context.Context, mask *OnceMask, id uint32, p Priority, msg string, attrs ...slog.Attr) bool {
	if mask == nil || mask.Suppressed(id) {
		return false
	}
	l.Log(ctx, p, msg, attrs...)
	mask.Set(id)
	return true
}

// Start 以 notice 输出启动横幅，包含当前掩码。
func (l *Logger) Start(ctx context.Context) {
	mask := l.policy.Mask()
	l.sink.Log(ctx, xlog.LevelNotice, fmt.Sprintf(StartBanner, mask))
}

// Stop 以 notice 输出停止横幅。
func (l *Logger) Stop(ctx context.Context, reason string) {
	l.sink.Log(ctx, xlog.LevelNotice, fmt.Sprintf(StopBanner, reason))
}

// Exit code 非 0 时以 crit 输出 msg，然后以 code 退出进程。
func (l *Logger) Exit(ctx context.Context, code int, msg string, attrs ...slog.Attr) {
	if code != 0 {
		l.Log(ctx, PriCrit, msg, append(attrs[:len(attrs):len(attrs)], slog.Int(xlog.KeyCode, code))...)
	}
	l.exit(code)
}

// OpenDump 调用 [OpenDump]，失败时以 err 级别记录。
func (l *Logger) OpenDump(ctx context.Context, dir, name string) (*Dump, error) {
	d, err := OpenDump(dir, name)
	if err != nil {
		l.Log(ctx, PriErr, "open support dump failed",
			slog.String("dir", dir), slog.String("name", name), xlog.Err(err))
		return nil, err
	}
	return d, nil
}
