// xlog.go 定义核心接口：Logger、Leveler、LoggerWithLevel
package xlog

import (
	"context"
	"log/slog"
)

// Logger 日志接口
//
// 方法签名只接受 slog.Attr，避免隐式 key-value 转换。
type Logger interface {
	// Debug 记录 Debug 级别日志
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)

	// Info 记录 Info 级别日志
	Info(ctx context.Context, msg string, attrs ...slog.Attr)

	// Warn 记录 Warn 级别日志
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)

	// Error 记录 Error 级别日志
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// Log 以任意级别记录日志，用于 notice/crit/alert/emerg 等 syslog 级别
	Log(ctx context.Context, level Level, msg string, attrs ...slog.Attr)

	// With 返回带额外属性的派生 Logger
	//
	// 派生 logger 共享父级的 LevelVar，动态级别变更会同步生效。
	With(attrs ...slog.Attr) Logger

	// WithGroup 返回带分组的派生 Logger
	WithGroup(name string) Logger
}

// Leveler 级别控制接口
type Leveler interface {
	// SetLevel 动态设置日志级别
	SetLevel(level Level)

	// GetLevel 获取当前日志级别
	GetLevel() Level

	// Enabled 检查指定级别是否启用
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel 组合接口：Logger + Leveler
//
// Build() 返回此接口。
type LoggerWithLevel interface {
	Logger
	Leveler
}
