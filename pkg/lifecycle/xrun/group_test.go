package xrun

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xops/pkg/observability/xlog"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger(t *testing.T) (xlog.Logger, *syncBuffer) {
	t.Helper()
	buf := &syncBuffer{}
	logger, cleanup, err := xlog.New().SetOutput(buf).SetLevel(xlog.LevelDebug).Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })
	return logger, buf
}

func TestGroup_Empty(t *testing.T) {
	g, _ := NewGroup(context.Background())
	assert.NoError(t, g.Wait())
}

func TestGroup_TaskError(t *testing.T) {
	logger, buf := newTestLogger(t)
	boom := errors.New("boom")

	g, ctx := NewGroup(context.Background(), WithName("opsd"), WithLogger(logger))
	var stopped atomic.Bool
	g.Go("waiter", func(ctx context.Context) error {
		<-ctx.Done()
		stopped.Store(true)
		return ctx.Err()
	})
	g.Go("failer", func(context.Context) error { return boom })

	require.ErrorIs(t, g.Wait(), boom)
	assert.True(t, stopped.Load())
	assert.Error(t, ctx.Err())

	out := buf.String()
	assert.Contains(t, out, "task exited with error")
	assert.Contains(t, out, "task=failer")
	assert.Contains(t, out, "group=opsd")
	// 因取消退出的任务不记录
	assert.NotContains(t, out, "task=waiter")
}

func TestGroup_NilTask(t *testing.T) {
	g, _ := NewGroup(context.Background())
	g.Go("nil", nil)
	assert.ErrorIs(t, g.Wait(), ErrNilTask)
}

func TestGroup_Cancel(t *testing.T) {
	tests := []struct {
		name  string
		cause error
	}{
		{name: "带原因", cause: errors.New("shutdown")},
		{name: "无原因", cause: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := NewGroup(context.Background())
			g.Go("wait", func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			})
			g.Cancel(tt.cause)
			assert.Equal(t, tt.cause, g.Wait())
		})
	}
}

func TestGroup_CancelCauseWithNilReturns(t *testing.T) {
	cause := errors.New("stop")
	g, _ := NewGroup(context.Background())
	g.Go("quiet", func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})
	g.Cancel(cause)
	assert.Equal(t, cause, g.Wait())
}

func TestGroup_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	g, _ := NewGroup(parent)
	g.Go("wait", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	cancel()
	assert.NoError(t, g.Wait())
}

func TestGroup_InternalCanceledIsKept(t *testing.T) {
	g, _ := NewGroup(context.Background())
	g.Go("inner", func(context.Context) error { return context.Canceled })
	assert.ErrorIs(t, g.Wait(), context.Canceled)
}

func TestGroup_NilContext(t *testing.T) {
	//nolint:staticcheck // 验证 nil context 归一化
	g, ctx := NewGroup(nil)
	require.NotNil(t, ctx)
	assert.Equal(t, ctx, g.Context())
	assert.NoError(t, g.Wait())
}

func TestRun_Signal(t *testing.T) {
	logger, buf := newTestLogger(t)
	sigs := make(chan os.Signal, 1)
	ctx := withInjectedSignals(context.Background(), sigs)

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, []Option{WithLogger(logger)}, func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})
	}()

	sigs <- syscall.SIGTERM
	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrSignal)
		var se *SignalError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, syscall.SIGTERM, se.Signal)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.Contains(t, buf.String(), "received signal")
}

func TestRun_SIGHUPReloads(t *testing.T) {
	logger, buf := newTestLogger(t)
	sigs := make(chan os.Signal)
	ctx, cancel := context.WithCancel(withInjectedSignals(context.Background(), sigs))
	defer cancel()

	var reloads atomic.Int32
	reloadErr := errors.New("bad config")
	reload := func(context.Context) error {
		if reloads.Add(1) == 2 {
			return reloadErr
		}
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, []Option{WithLogger(logger), WithReload(reload)})
	}()

	sigs <- syscall.SIGHUP
	sigs <- syscall.SIGHUP
	require.Eventually(t, func() bool { return reloads.Load() == 2 }, 5*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.Contains(t, buf.String(), "reload failed")
}

func TestRun_SIGHUPWithoutReload(t *testing.T) {
	logger, buf := newTestLogger(t)
	sigs := make(chan os.Signal)
	ctx := withInjectedSignals(context.Background(), sigs)

	done := make(chan error, 1)
	go func() { done <- Run(ctx, []Option{WithLogger(logger)}) }()

	sigs <- syscall.SIGHUP
	sigs <- syscall.SIGINT
	err := <-done
	require.ErrorIs(t, err, ErrSignal)
	assert.Contains(t, buf.String(), "SIGHUP ignored")
}

func TestRun_WithoutSignalHandler(t *testing.T) {
	var ran atomic.Bool
	err := Run(context.Background(), []Option{WithoutSignalHandler()}, func(context.Context) error {
		ran.Store(true)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran.Load())
}

func TestRun_TaskErrorStopsSignalHandler(t *testing.T) {
	boom := errors.New("boom")
	err := Run(context.Background(), []Option{WithSignals(syscall.SIGUSR1)},
		func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestSignalError(t *testing.T) {
	err := &SignalError{Signal: syscall.SIGINT}
	assert.Equal(t, "received signal interrupt", err.Error())
	assert.ErrorIs(t, err, ErrSignal)
	assert.Equal(t, "received signal <nil>", (&SignalError{}).Error())
}

func TestDefaultSignals(t *testing.T) {
	a := DefaultSignals()
	a[0] = syscall.SIGUSR2
	assert.Equal(t, syscall.SIGINT, DefaultSignals()[0])
	assert.NotContains(t, DefaultSignals(), syscall.SIGHUP)
}

func TestWithSignals_Copies(t *testing.T) {
	in := []os.Signal{syscall.SIGUSR1}
	opt := WithSignals(in...)
	in[0] = syscall.SIGUSR2

	o := buildOptions([]Option{opt, nil, WithName("")})
	assert.Equal(t, []os.Signal{syscall.SIGUSR1}, o.signals)
	assert.Equal(t, "xrun", o.name)
}
