package xfile

import "errors"

var (
	// ErrEmptyPath 表示必需的路径参数为空。
	ErrEmptyPath = errors.New("xfile: path is required")

	// ErrInvalidPath 表示路径格式无效（如目录路径、非绝对 base 等）。
	ErrInvalidPath = errors.New("xfile: invalid path")

	// ErrPathTraversal 表示路径包含 ".." 段。
	ErrPathTraversal = errors.New("xfile: path traversal detected")

	// ErrPathEscaped 表示拼接结果超出了 base 目录。
	ErrPathEscaped = errors.New("xfile: path escapes base directory")

	// ErrNullByte 表示路径包含空字节，内核会在该处截断路径。
	ErrNullByte = errors.New("xfile: path contains null byte")

	// ErrInvalidPerm 表示目录权限缺少所有者执行位。
	ErrInvalidPerm = errors.New("xfile: invalid directory permission")
)
