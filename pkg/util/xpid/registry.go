package xpid

import (
	"fmt"
	"strings"

	"github.com/omeyang/xops/pkg/util/xfile"
	"github.com/omeyang/xops/pkg/util/xproc"
)

// DefaultRunDir 默认 PID 文件目录。
const DefaultRunDir = "/var/run"

// MaxPathLen 按名称构造的 PID 文件路径的缓冲区长度（含结尾 NUL），
// 实际路径最多 MaxPathLen-1 字节，超出部分被截断。
const MaxPathLen = 80

// Suffix PID 文件扩展名。
const Suffix = ".pid"

// Registry 管理某个运行目录下以进程名命名的 PID 文件。
//
// 零值不可用，请使用 [NewRegistry]。Registry 不可变，可并发使用。
type Registry struct {
	runDir string
}

// Option 配置 [Registry]。
type Option func(*Registry)

// WithRunDir 设置运行目录，必须为绝对路径；空字符串被忽略。
func WithRunDir(dir string) Option {
	return func(r *Registry) {
		if dir != "" {
			r.runDir = dir
		}
	}
}

// NewRegistry 创建 Registry，默认运行目录为 [DefaultRunDir]。
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{runDir: DefaultRunDir}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunDir 返回运行目录。
func (r *Registry) RunDir() string { return r.runDir }

// Path 返回 name 对应的 PID 文件路径 "<RunDir>/<name>.pid"。
//
// 结果超过 MaxPathLen-1 字节时截断。
func (r *Registry) Path(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	p, err := xfile.SafeJoin(r.runDir, name+Suffix)
	if err != nil {
		return "", fmt.Errorf("xpid: run dir %q: %w", r.runDir, err)
	}
	if len(p) > MaxPathLen-1 {
		p = p[:MaxPathLen-1]
	}
	return p, nil
}

// Record 确保运行目录存在，并写入当前进程的 PID 文件。
func (r *Registry) Record(name string) error {
	p, err := r.Path(name)
	if err != nil {
		return err
	}
	if err := xfile.EnsureDir(p); err != nil {
		return fmt.Errorf("xpid: record: %w", err)
	}
	return Record(p)
}

// Read 读取 name 对应 PID 文件中的进程 ID。
func (r *Registry) Read(name string) (int, error) {
	p, err := r.Path(name)
	if err != nil {
		return 0, err
	}
	return Read(p)
}

// Remove 删除 name 对应的 PID 文件。
func (r *Registry) Remove(name string) error {
	p, err := r.Path(name)
	if err != nil {
		return err
	}
	return Remove(p)
}

// Running 读取 name 的 PID 并探测该进程是否存活。
//
// PID 文件读取失败时返回该错误，alive 为 false。
func (r *Registry) Running(name string) (pid int, alive bool, err error) {
	pid, err = r.Read(name)
	if err != nil {
		return 0, false, err
	}
	alive, err = xproc.Alive(pid)
	if err != nil {
		return pid, false, fmt.Errorf("xpid: check %s: %w", name, err)
	}
	return pid, alive, nil
}

var defaultRegistry = NewRegistry()

// ReadByName 读取 /var/run/<name>.pid 中的进程 ID。
func ReadByName(name string) (int, error) {
	return defaultRegistry.Read(name)
}

func validateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, "/\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
