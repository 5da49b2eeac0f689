package xslog

import (
	"errors"
	"fmt"
	"os"

	"github.com/omeyang/xops/pkg/util/xfile"
)

// 支持转储默认位置与限制
const (
	DefaultDumpDir = "/run/sdump"
	DumpDirPerm    = 0o775
	DumpFileMode   = 0o644
	// DumpPathLen 转储文件路径缓冲区长度（含结尾 NUL）
	DumpPathLen = 256
)

// ErrDumpPathTooLong 拼接后的转储路径不少于 [DumpPathLen] 字节。
var ErrDumpPathTooLong = errors.New("xslog: dump path too long")

// Dump 无缓冲的支持转储文件，每次写入直接落盘。
type Dump struct {
	f *os.File
}

// OpenDump 在 dir 下创建（或截断）名为 name 的转储文件。dir 为空时使用 [DefaultDumpDir]。
//
// name 不得包含 ".." 或为绝对路径，拼接后的路径超过 255 字节时返回
// [ErrDumpPathTooLong]；目录不存在时以 0775 创建。
func OpenDump(dir, name string) (*Dump, error) {
	if dir == "" {
		dir = DefaultDumpDir
	}
	path, err := xfile.SafeJoin(dir, name)
	if err != nil {
		return nil, fmt.Errorf("xslog: dump path: %w", err)
	}
	if len(path) > DumpPathLen-1 {
		return nil, fmt.Errorf("%w: %d bytes", ErrDumpPathTooLong, len(path))
	}
	if err := xfile.EnsureDirWithPerm(path, DumpDirPerm); err != nil {
		return nil, fmt.Errorf("xslog: dump dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, DumpFileMode) //#nosec G304 -- 路径经 SafeJoin 校验
	if err != nil {
		return nil, fmt.Errorf("xslog: open dump: %w", err)
	}
	return &Dump{f: f}, nil
}

// Path 返回转储文件路径。
func (d *Dump) Path() string { return d.f.Name() }

// Write 实现 io.Writer。
func (d *Dump) Write(p []byte) (int, error) { return d.f.Write(p) }

// Printf 按格式写入。
func (d *Dump) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(d.f, format, args...)
}

// Close 关闭文件。
func (d *Dump) Close() error { return d.f.Close() }
