package xrun

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrSignal 因收到终止信号而退出，用 errors.Is 判断。
	ErrSignal = errors.New("xrun: received signal")

	// ErrNilTask 传入了 nil 任务。
	ErrNilTask = errors.New("xrun: nil task")

	// ErrInvalidInterval Ticker 的间隔必须为正数。
	ErrInvalidInterval = errors.New("xrun: interval must be positive")
)

// SignalError 记录触发退出的信号。
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	if e.Signal == nil {
		return "received signal <nil>"
	}
	return fmt.Sprintf("received signal %s", e.Signal)
}

// Unwrap 使 errors.Is(err, ErrSignal) 成立。
func (e *SignalError) Unwrap() error { return ErrSignal }
