package xpid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/omeyang/xops/pkg/util/xproc"
)

// FileMode PID 文件权限。
const FileMode = 0o644

// Record 将当前进程 ID 以 "<pid>\n" 写入 path（截断已有内容）。
//
// 打开失败时返回底层 *fs.PathError；写入或关闭失败同样返回错误。
func Record(path string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FileMode)
	if err != nil {
		return fmt.Errorf("xpid: record: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("xpid: record: %w", cerr)
		}
	}()

	if _, err := fmt.Fprintf(f, "%d\n", xproc.ProcessID()); err != nil {
		return fmt.Errorf("xpid: record: %w", err)
	}
	return nil
}

// Read 读取 path 中记录的进程 ID。
//
// 解析规则与 scanf("%d") 相同：跳过前导空白，可选正负号，读取十进制数字直到
// 第一个非数字字符，"123abc" 得到 123。找不到数字或超出 int 范围时返回 [ErrInvalidFormat]。
func Read(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("xpid: read: %w", err)
	}
	defer f.Close() //nolint:errcheck // 只读文件关闭错误无意义

	pid, err := scanInt(bufio.NewReader(f))
	if errors.Is(err, ErrInvalidFormat) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}
	if err != nil {
		return 0, fmt.Errorf("xpid: read: %w", err)
	}
	return pid, nil
}

// Remove 删除 PID 文件，文件不存在不视为错误。
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("xpid: remove: %w", err)
	}
	return nil
}

// scanInt 从 r 读取一个十进制整数，不限制前导空白与数字的长度。
//
// 找不到数字或超出 int 范围时返回 [ErrInvalidFormat]，读取失败时返回底层错误。
func scanInt(r io.ByteReader) (int, error) {
	c, err := r.ReadByte()
	for err == nil && isSpace(c) {
		c, err = r.ReadByte()
	}

	neg := false
	if err == nil && (c == '+' || c == '-') {
		neg = c == '-'
		c, err = r.ReadByte()
	}

	// 以负数累加，math.MinInt 也能表示
	var v int
	digits := 0
	for err == nil && c >= '0' && c <= '9' {
		d := int(c - '0')
		if v < (math.MinInt+d)/10 {
			return 0, ErrInvalidFormat
		}
		v = v*10 - d
		digits++
		c, err = r.ReadByte()
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}
	if digits == 0 {
		return 0, ErrInvalidFormat
	}
	if neg {
		return v, nil
	}
	if v == math.MinInt {
		return 0, ErrInvalidFormat
	}
	return -v, nil
}

// isSpace 与 C isspace 在 "C" locale 下一致。
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
