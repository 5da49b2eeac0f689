// Package observability 提供日志相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog，支持 text/json/journald 输出
//   - xslog: 按级别掩码过滤的 syslog 式日志、一次性日志、支持转储文件
//   - xrotate: 日志文件按大小轮转
//
// 设计原则：
//   - 不提供全局 logger，由调用方构建后显式传递
//   - 级别掩码可在运行时原子更新
package observability
