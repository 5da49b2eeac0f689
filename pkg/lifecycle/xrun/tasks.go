package xrun

import (
	"context"
	"time"
)

// Ticker 返回每隔 interval 执行一次 fn 的任务，fn 返回错误时任务结束。
//
// immediate 为 true 时启动后先执行一次。
func Ticker(interval time.Duration, immediate bool, fn func(ctx context.Context) error) Task {
	return func(ctx context.Context) error {
		if interval <= 0 {
			return ErrInvalidInterval
		}
		if fn == nil {
			return ErrNilTask
		}
		if immediate {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx); err != nil {
				return err
			}
		}

		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
				if err := fn(ctx); err != nil {
					return err
				}
			}
		}
	}
}
