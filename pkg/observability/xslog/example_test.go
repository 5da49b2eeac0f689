package xslog_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/omeyang/xops/pkg/observability/xlog"
	"github.com/omeyang/xops/pkg/observability/xslog"
)

func ExampleLogger() {
	sink, cleanup, err := xlog.New().
		SetOutput(os.Stdout).
		SetLevel(xlog.LevelDebug).
		SetReplaceAttr(func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}).
		Build()
	if err != nil {
		return
	}
	defer cleanup() //nolint:errcheck // stdout 无需关闭

	policy := xslog.NewPolicy(xslog.DefaultMask)
	log, _ := xslog.New(policy, sink)
	ctx := context.Background()

	log.Start(ctx)
	log.Log(ctx, xslog.PriInfo, "suppressed by mask")
	policy.SetMask(uint32(xslog.PriInfo))
	log.Log(ctx, xslog.PriInfo, "now visible")

	var once xslog.OnceMask
	for range 3 {
		log.Once(ctx, &once, 0x1, xslog.PriWarning, "link flapping")
	}
	// Output:
	// level=NOTICE msg="Logging started, logging level mask=0x0"
	// level=INFO msg="now visible"
	// level=WARN msg="link flapping"
}
