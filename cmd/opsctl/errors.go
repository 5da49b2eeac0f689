package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
)

// 退出码
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError 参数错误，退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// exitCode 将命令错误映射为退出码，并输出错误信息。
func (a *app) exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(a.stderr, "参数错误: %v\n", ue)
		return exitUsage
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		if msg := ec.Error(); msg != "" {
			fmt.Fprintln(a.stderr, msg)
		}
		return ec.ExitCode()
	}
	fmt.Fprintf(a.stderr, "错误: %v\n", err)
	return exitFailure
}
