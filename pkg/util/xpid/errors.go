package xpid

import "errors"

var (
	// ErrInvalidFormat 表示 PID 文件内容中找不到十进制整数。
	ErrInvalidFormat = errors.New("xpid: invalid pid file format")

	// ErrInvalidName 表示进程名不能用于构造 PID 文件路径。
	ErrInvalidName = errors.New("xpid: invalid process name")
)
