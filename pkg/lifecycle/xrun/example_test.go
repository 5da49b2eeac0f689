package xrun_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/omeyang/xops/pkg/lifecycle/xrun"
)

func ExampleRun() {
	var checks atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	err := xrun.Run(ctx, []xrun.Option{xrun.WithoutSignalHandler()},
		xrun.Ticker(time.Millisecond, true, func(context.Context) error {
			if checks.Add(1) == 3 {
				cancel()
			}
			return nil
		}),
	)
	fmt.Println(err, checks.Load() >= 3)
	// Output: <nil> true
}

func ExampleGroup() {
	g, _ := xrun.NewGroup(context.Background(), xrun.WithName("opsd"))
	g.Go("worker", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	g.Cancel(errors.New("maintenance"))
	fmt.Println(g.Wait())
	// Output: maintenance
}
