package xrun

import (
	"context"
	"os"
	"syscall"

	"github.com/omeyang/xops/pkg/observability/xlog"
)

// Option 配置 [Group] 与 [Run]。
type Option func(*options)

type options struct {
	name            string
	logger          xlog.Logger
	signals         []os.Signal
	noSignalHandler bool
	reload          func(ctx context.Context) error
}

func defaultOptions() *options {
	return &options{name: "xrun"}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithName 设置日志中的组名，默认 "xrun"。
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger 设置生命周期事件的日志输出，默认不记录。
func WithLogger(logger xlog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSignals 设置 [Run] 视为终止请求的信号，默认 [DefaultSignals]。
// SIGHUP 即使出现在列表中也按重载处理。
func WithSignals(signals ...os.Signal) Option {
	copied := append([]os.Signal(nil), signals...)
	return func(o *options) {
		o.signals = copied
	}
}

// WithoutSignalHandler 禁止 [Run] 监听信号。
func WithoutSignalHandler() Option {
	return func(o *options) {
		o.noSignalHandler = true
	}
}

// WithReload 设置收到 SIGHUP 时的回调。回调返回的错误只记录日志，不终止运行。
func WithReload(fn func(ctx context.Context) error) Option {
	return func(o *options) {
		o.reload = fn
	}
}

// DefaultSignals 返回默认的终止信号 SIGINT、SIGTERM、SIGQUIT，每次返回新切片。
func DefaultSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}
}
