package xrun

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xops/pkg/observability/xlog"
)

// Task 阻塞运行直到 ctx 取消或出错。
type Task func(ctx context.Context) error

// Group 并发运行任务，任一任务返回错误即取消其余任务。
//
// Go 与 Cancel 可并发调用，Wait 只应调用一次。
type Group struct {
	eg       *errgroup.Group
	ctx      context.Context
	causeCtx context.Context
	cancel   context.CancelCauseFunc
	opts     *options
}

// NewGroup 创建 Group，返回的 context 在任一任务失败或 Cancel 时取消。
func NewGroup(ctx context.Context, opts ...Option) (*Group, context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	causeCtx, cancel := context.WithCancelCause(ctx)
	eg, egCtx := errgroup.WithContext(causeCtx)
	return &Group{
		eg:       eg,
		ctx:      egCtx,
		causeCtx: causeCtx,
		cancel:   cancel,
		opts:     buildOptions(opts),
	}, egCtx
}

// Go 以 name 启动任务。任务因错误（非取消）退出时记录 warning。
func (g *Group) Go(name string, task Task) {
	g.eg.Go(func() error {
		if task == nil {
			return ErrNilTask
		}
		err := task(g.ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			g.log(xlog.LevelWarn, "task exited with error",
				slog.String("task", name), xlog.Err(err))
		}
		return err
	})
}

// Wait 等待全部任务退出并返回退出原因。
//
// 返回第一个任务错误；由 [Group.Cancel] 或信号触发的关闭返回对应 cause；
// 父 context 的普通取消返回 nil。
func (g *Group) Wait() error {
	defer g.cancel(nil)

	err := g.eg.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if g.causeCtx.Err() != nil {
		if cause := context.Cause(g.causeCtx); !errors.Is(cause, context.Canceled) {
			return cause
		}
		return nil
	}
	// causeCtx 未取消，context.Canceled 来自任务内部
	return err
}

// Cancel 以 cause 取消全部任务，cause 为 nil 时 Wait 返回 nil。
func (g *Group) Cancel(cause error) {
	g.cancel(cause)
}

// Context 返回任务使用的 context。
func (g *Group) Context() context.Context { return g.ctx }

func (g *Group) log(level xlog.Level, msg string, attrs ...slog.Attr) {
	if g.opts.logger == nil {
		return
	}
	attrs = append(attrs, slog.String("group", g.opts.name))
	g.opts.logger.Log(g.ctx, level, msg, attrs...)
}

// Run 运行 tasks 直到全部退出，默认同时监听终止信号与 SIGHUP。
//
// 收到终止信号时返回 *[SignalError]。
func Run(ctx context.Context, opts []Option, tasks ...Task) error {
	g, _ := NewGroup(ctx, opts...)
	if !g.opts.noSignalHandler {
		g.Go("signals", g.handleSignals)
	}
	for i, task := range tasks {
		g.Go(taskName(i), task)
	}
	return g.Wait()
}

func taskName(i int) string {
	return "task-" + strconv.Itoa(i)
}

func (g *Group) handleSignals(ctx context.Context) error {
	terms := g.opts.signals
	if len(terms) == 0 {
		terms = DefaultSignals()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, append(terms, syscall.SIGHUP)...)
	defer signal.Stop(sigCh)
	injected := injectedSignals(ctx)

	for {
		var sig os.Signal
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig = <-sigCh:
		case sig = <-injected:
		}

		if sig == syscall.SIGHUP {
			g.reload(ctx)
			continue
		}
		g.log(xlog.LevelNotice, "received signal", slog.String("signal", sig.String()))
		g.cancel(&SignalError{Signal: sig})
		return nil
	}
}

func (g *Group) reload(ctx context.Context) {
	if g.opts.reload == nil {
		g.log(xlog.LevelInfo, "SIGHUP ignored")
		return
	}
	g.log(xlog.LevelNotice, "reloading")
	if err := g.opts.reload(ctx); err != nil {
		g.log(xlog.LevelError, "reload failed", xlog.Err(err))
	}
}

// 测试通过 context 注入信号，避免向进程发送真实信号。
type injectKey struct{}

func injectedSignals(ctx context.Context) <-chan os.Signal {
	c, _ := ctx.Value(injectKey{}).(<-chan os.Signal)
	return c
}

func withInjectedSignals(ctx context.Context, c <-chan os.Signal) context.Context {
	return context.WithValue(ctx, injectKey{}, c)
}
