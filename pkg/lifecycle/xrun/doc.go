// Package xrun 管理守护进程的生命周期：用 errgroup 并发运行若干任务，
// 任一任务失败、父 context 取消或收到终止信号时协调关闭。
//
// 与常见的服务框架不同，SIGHUP 默认不终止进程，而是交给 [WithReload]
// 注册的回调重新加载配置，这是网络守护进程的惯例：
//
//	err := xrun.Run(ctx, []xrun.Option{
//	    xrun.WithName("opsd"),
//	    xrun.WithLogger(logger),
//	    xrun.WithReload(func(ctx context.Context) error { return cfg.Reload() }),
//	}, watcher.Run, xrun.Ticker(time.Minute, false, healthCheck))
//	if errors.Is(err, xrun.ErrSignal) {
//	    // 正常的信号退出
//	}
//
// 未注册 reload 回调时 SIGHUP 被忽略。
package xrun
