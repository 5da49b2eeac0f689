//go:build unix

package xproc

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// kill 支持测试中 mock（不可与 t.Parallel 同用）。
var kill = unix.Kill

// Alive 通过 kill(pid, 0) 探测进程是否存在。
//
// ESRCH 表示进程不存在；EPERM 表示进程存在但无权发信号，视为存活。
func Alive(pid int) (bool, error) {
	if pid <= 0 {
		return false, fmt.Errorf("%w: %d", ErrInvalidPID, pid)
	}
	err := kill(pid, 0)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, unix.ESRCH):
		return false, nil
	case errors.Is(err, unix.EPERM):
		return true, nil
	default:
		return false, fmt.Errorf("xproc: kill(%d, 0): %w", pid, err)
	}
}
