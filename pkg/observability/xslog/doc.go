// Package xslog 实现守护进程的日志优先级策略。
//
// 优先级是 32 位掩码：低 8 位对应 syslog severity（[PriEmerg] … [PriDebug]），
// 0x100 起的高位由各服务自行定义（[ServicePriority]）。
//
// [Policy] 保存运行时可调整的级别掩码。notice 及更重要的消息始终输出；
// info、debug 和服务自定义位需要在掩码中打开。服务自定义位最终以 debug
// severity 输出，并附带 priority 属性。
//
//	policy := xslog.NewPolicy(xslog.DefaultMask)
//	log, err := xslog.New(policy, sink)
//	log.Start(ctx)
//	log.Log(ctx, xslog.PriInfo, "neighbor added")       // 掩码未打开 0x40 时不输出
//	log.Log(ctx, xslog.ServicePriority(2), "lldp rx")  // 掩码打开 0x400 时以 debug 输出
//
// # 只记录一次
//
// [OnceMask] 是调用方持有的抑制位图。[Logger.Once] 在对应位未置位时尝试输出，
// 随后无论策略是否放行都会置位，直到调用方 [OnceMask.Clear]。OnceMask 不加锁，
// 并发使用时由调用方同步。
//
// # 支持转储
//
// [OpenDump] 在 /run/sdump/ 下创建无缓冲的转储文件，供诊断命令写出内部状态。
package xslog
