// Package xrotate 为守护进程日志提供按大小轮转的文件输出。
//
// [Rotator] 基于 lumberjack v2，实现 io.WriteCloser，可直接作为 xlog 的输出目标；
// 另提供 [Rotator.Rotate] 供收到 SIGHUP 等信号时手动轮转。
//
//	r, err := xrotate.New("/var/log/opsd.log", xrotate.WithMaxSize(16))
//	if err != nil { ... }
//	defer r.Close()
//
// 所有方法并发安全。Close 之后 Write 和 Rotate 返回 [ErrClosed]。
package xrotate
