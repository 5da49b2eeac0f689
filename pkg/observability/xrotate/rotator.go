package xrotate

import (
	"fmt"
	"io"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/omeyang/xops/pkg/util/xfile"
)

// 默认配置，适合常驻的小型守护进程。
const (
	DefaultMaxSizeMB  = 64
	DefaultMaxBackups = 5
	DefaultMaxAgeDays = 14
	DefaultCompress   = true
)

const (
	maxSizeMB  = 10240
	maxBackups = 1024
	maxAgeDays = 3650
)

var _ io.WriteCloser = (*Rotator)(nil)

type config struct {
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
	compress   bool
	localTime  bool
}

// Option 配置 [Rotator]。
type Option func(*config)

// WithMaxSize 单个文件最大大小（MB），超过后自动轮转。
func WithMaxSize(mb int) Option {
	return func(c *config) { c.maxSizeMB = mb }
}

// WithMaxBackups 保留的备份数量，0 表示只按天数清理。
func WithMaxBackups(n int) Option {
	return func(c *config) { c.maxBackups = n }
}

// WithMaxAge 备份保留天数，0 表示只按数量清理。
func WithMaxAge(days int) Option {
	return func(c *config) { c.maxAgeDays = days }
}

// WithCompress 是否 gzip 压缩备份。
func WithCompress(compress bool) Option {
	return func(c *config) { c.compress = compress }
}

// WithLocalTime 备份文件名中的时间戳使用本地时间，默认 UTC。
func WithLocalTime(local bool) Option {
	return func(c *config) { c.localTime = local }
}

// Rotator 按大小轮转的日志文件。
type Rotator struct {
	logger *lumberjack.Logger
	closed atomic.Bool
}

// New 创建 Rotator。
//
// filename 经 [xfile.SanitizePath] 规范化，父目录不存在时以 0750 创建。
// 文件本身在首次写入时才会创建。
func New(filename string, opts ...Option) (*Rotator, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}

	cfg := config{
		maxSizeMB:  DefaultMaxSizeMB,
		maxBackups: DefaultMaxBackups,
		maxAgeDays: DefaultMaxAgeDays,
		compress:   DefaultCompress,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	path, err := xfile.SanitizePath(filename)
	if err != nil {
		return nil, fmt.Errorf("xrotate: %w", err)
	}
	if err := xfile.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("xrotate: %w", err)
	}

	return &Rotator{
		logger: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.maxSizeMB,
			MaxBackups: cfg.maxBackups,
			MaxAge:     cfg.maxAgeDays,
			Compress:   cfg.compress,
			LocalTime:  cfg.localTime,
		},
	}, nil
}

func (c *config) validate() error {
	if c.maxSizeMB <= 0 || c.maxSizeMB > maxSizeMB {
		return fmt.Errorf("%w: got %d, want 1~%d", ErrInvalidMaxSize, c.maxSizeMB, maxSizeMB)
	}
	if c.maxBackups < 0 || c.maxBackups > maxBackups {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxBackups, c.maxBackups, maxBackups)
	}
	if c.maxAgeDays < 0 || c.maxAgeDays > maxAgeDays {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxAge, c.maxAgeDays, maxAgeDays)
	}
	if c.maxBackups == 0 && c.maxAgeDays == 0 {
		return ErrNoCleanupPolicy
	}
	return nil
}

// Filename 返回规范化后的日志文件路径。
func (r *Rotator) Filename() string { return r.logger.Filename }

// Write 写入日志，超过大小上限时先轮转。
func (r *Rotator) Write(p []byte) (int, error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}
	n, err := r.logger.Write(p)
	if err != nil && r.closed.Load() {
		// 与 Close 并发时统一返回 ErrClosed
		return n, ErrClosed
	}
	return n, err
}

// Rotate 关闭当前文件并重命名为备份，随后打开新文件。
func (r *Rotator) Rotate() error {
	if r.closed.Load() {
		return ErrClosed
	}
	if err := r.logger.Rotate(); err != nil {
		if r.closed.Load() {
			return ErrClosed
		}
		return err
	}
	return nil
}

// Close 关闭文件。重复调用返回 [ErrClosed]。
func (r *Rotator) Close() error {
	if r.closed.Swap(true) {
		return ErrClosed
	}
	return r.logger.Close()
}
