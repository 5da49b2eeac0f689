package xlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 日志级别，与 slog.Level 兼容。
//
// 在 slog 四个级别之外补充 syslog 的 notice/crit/alert/emerg，
// 相邻级别间隔保持为 slog 的惯例（notice 位于 info 与 warn 之间）。
type Level slog.Level

// 日志级别常量
const (
	LevelDebug  = Level(slog.LevelDebug)
	LevelInfo   = Level(slog.LevelInfo)
	LevelNotice = Level(slog.LevelInfo + 2)
	LevelWarn   = Level(slog.LevelWarn)
	LevelError  = Level(slog.LevelError)
	LevelCrit   = Level(slog.LevelError + 4)
	LevelAlert  = Level(slog.LevelError + 8)
	LevelEmerg  = Level(slog.LevelError + 12)
)

// String 返回级别的字符串表示
//
// 已定义级别返回大写名称，其他值委托给 slog.Level.String()（如 "INFO+1"）。
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelNotice:
		return "NOTICE"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelCrit:
		return "CRIT"
	case LevelAlert:
		return "ALERT"
	case LevelEmerg:
		return "EMERG"
	default:
		return slog.Level(l).String()
	}
}

// MarshalText 实现 encoding.TextMarshaler 接口
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler 接口
//
// 支持从配置文件直接反序列化日志级别。
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel 解析字符串为日志级别（大小写不敏感，自动 TrimSpace）
//
// 除级别名外，还接受 syslog 常见别名：warning、err、critical、emergency、panic。
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "notice":
		return LevelNotice, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "crit", "critical":
		return LevelCrit, nil
	case "alert":
		return LevelAlert, nil
	case "emerg", "emergency", "panic":
		return LevelEmerg, nil
	default:
		return LevelInfo, fmt.Errorf("xlog: unknown level %q", s)
	}
}

// severityLevels 按 syslog severity（0=emerg … 7=debug）索引
var severityLevels = [...]Level{
	LevelEmerg, LevelAlert, LevelCrit, LevelError,
	LevelWarn, LevelNotice, LevelInfo, LevelDebug,
}

// LevelFromSeverity 将 syslog severity 转为日志级别，超出 0~7 时按 debug 处理。
func LevelFromSeverity(sev int) Level {
	if sev < 0 || sev >= len(severityLevels) {
		return LevelDebug
	}
	return severityLevels[sev]
}

// Severity 返回 l 对应的 syslog severity（0~7）。
//
// 非标准级别向下取整：INFO+1 视为 info，ERROR+2 视为 error。
func (l Level) Severity() int {
	for sev, lv := range severityLevels {
		if l >= lv {
			return sev
		}
	}
	return len(severityLevels) - 1
}
