package xconf

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce 默认防抖时间。
const DefaultDebounce = 100 * time.Millisecond

// WatchCallback 每次重载后调用，err 非 nil 表示重载或监视出错（旧配置仍有效）。
type WatchCallback func(cfg *Config, err error)

// WatchOption 监视选项。
type WatchOption func(*Watcher)

// WithDebounce 设置防抖时间，窗口内的多次变更只触发一次重载。
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// Watcher 配置文件监视器。
type Watcher struct {
	cfg      *Config
	fs       *fsnotify.Watcher
	callback WatchCallback
	debounce time.Duration
	filename string

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
	once   sync.Once

	// pending 计数已调度但尚未结束的重载
	pending sync.WaitGroup
}

// Watch 创建监视器，调用 [Watcher.Run] 后开始处理事件。
func Watch(cfg *Config, callback WatchCallback, opts ...WatchOption) (*Watcher, error) {
	if cfg == nil || cfg.path == "" {
		return nil, ErrNotReloadable
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xconf: create watcher: %w", err)
	}
	// 监视目录而非文件，rename 替换后仍能收到事件
	dir := filepath.Dir(cfg.path)
	if err := fsw.Add(dir); err != nil {
		return nil, errors.Join(fmt.Errorf("xconf: watch %s: %w", dir, err), fsw.Close())
	}

	w := &Watcher{
		cfg:      cfg,
		fs:       fsw,
		callback: callback,
		debounce: DefaultDebounce,
		filename: filepath.Base(cfg.path),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

// Run 处理文件事件直到 ctx 取消或 [Watcher.Close]，返回时监视器已关闭。
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close() //nolint:errcheck // 关闭错误在显式 Close 时返回

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.notify(fmt.Errorf("xconf: watch error: %w", err))
		}
	}
}

// Close 停止监视并取消尚未触发的重载，可重复调用。
//
// 正在执行的重载会被等待，Close 返回后不再调用回调；因此不能在回调中调用 Close。
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.stopTimer()
		w.mu.Unlock()
		err = w.fs.Close()
	})
	w.pending.Wait()
	return err
}

// stopTimer 取消尚未触发的重载，调用方持有 mu。
func (w *Watcher) stopTimer() {
	if w.timer != nil && w.timer.Stop() {
		w.pending.Done()
	}
	w.timer = nil
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if filepath.Base(ev.Name) != w.filename {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.stopTimer()
	w.pending.Add(1)
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	defer w.pending.Done()

	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}
	w.notify(w.cfg.Reload())
}

func (w *Watcher) notify(err error) {
	if w.callback != nil {
		w.callback(w.cfg, err)
	}
}
