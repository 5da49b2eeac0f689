package xoctet

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmpty 表示输入为空字符串。
	ErrEmpty = errors.New("xoctet: empty input")

	// ErrInvalidFormat 表示字符串不是合法的分隔十六进制八位组。
	ErrInvalidFormat = errors.New("xoctet: invalid format")

	// ErrInvalidLength 表示八位组数量与期望不符。
	ErrInvalidLength = errors.New("xoctet: invalid length")
)
