// Package xproc 提供当前进程标识与进程存活探测。
package xproc

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrInvalidPID 表示进程 ID 不是正整数。
	ErrInvalidPID = errors.New("xproc: invalid pid")

	// ErrUnsupportedPlatform 表示当前平台不支持该操作。
	ErrUnsupportedPlatform = errors.New("xproc: unsupported platform")
)

// osExecutable 是 os.Executable 的包级变量，支持测试中 mock。
var osExecutable = os.Executable

var (
	processNameOnce  sync.Once
	processNameValue string
)

// ProcessID 返回当前进程 ID。
func ProcessID() int {
	return os.Getpid()
}

// ProcessName 返回当前进程名称（不含路径）。
//
// 优先使用 [os.Executable]，失败时回退到 os.Args[0]；结果在首次调用时缓存。
// 所有来源均无效时返回空字符串。
func ProcessName() string {
	processNameOnce.Do(func() {
		processNameValue = resolveProcessName()
	})
	return processNameValue
}

func resolveProcessName() string {
	if exe, err := osExecutable(); err == nil && exe != "" {
		if name := baseName(exe); name != "" {
			return name
		}
	}
	if len(os.Args) == 0 || os.Args[0] == "" {
		return ""
	}
	return baseName(os.Args[0])
}

// baseName 对 filepath.Base 的特殊返回值（"."、".."、分隔符）返回空字符串。
func baseName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	return name
}
