// Package xlog 基于 log/slog 的结构化日志库。
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，Build 返回该错误）。
// Builder 为一次性使用，调用 [Builder.Build] 后需通过 [New] 创建新实例。
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("notice").
//		SetFormat("journal").
//		SetIdent("opsd").
//		Build()
//	if err != nil { ... }
//	defer cleanup()
//
// 不使用全局 Logger：由 main 构建后显式传给需要的组件。
//
// # 输出格式
//
//   - text、json：写入 SetOutput 指定的 io.Writer，或 SetRotation 指定的轮转文件
//   - journal：通过 [JournalHandler] 直接发往 systemd-journald，
//     journald 不可用时 Build 返回 [ErrJournalUnavailable]
//
// # 日志级别
//
// 在 slog 的 Debug(-4)、Info(0)、Warn(4)、Error(8) 之外补充 syslog 级别：
// Notice(2)、Crit(12)、Alert(16)、Emerg(20)。[Logger.Log] 可按任意级别记录。
// [LevelFromSeverity] 与 [Level.Severity] 在级别和 syslog severity（0~7）之间转换。
//
// # 便捷属性
//
// [Err]、[Component]、[Path]、[PID]、[Mask]、[Priority]。
//
// # 派生 Logger
//
// [Logger.With] 和 [Logger.WithGroup] 返回 [Logger]；派生 logger 共享父级的
// LevelVar，动态级别变更会同步生效。
package xlog
