package xslog

import (
	"fmt"

	"github.com/omeyang/xops/pkg/observability/xlog"
)

// Severity syslog severity，0 最严重。
type Severity int

// syslog severity
const (
	SevEmerg Severity = iota
	SevAlert
	SevCrit
	SevErr
	SevWarning
	SevNotice
	SevInfo
	SevDebug
)

var severityNames = [...]string{"emerg", "alert", "crit", "err", "warning", "notice", "info", "debug"}

func (s Severity) String() string {
	if s < SevEmerg || s > SevDebug {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// Level 返回对应的 xlog 级别。
func (s Severity) Level() xlog.Level {
	return xlog.LevelFromSeverity(int(s))
}

// Priority 日志优先级位掩码。
type Priority uint32

// 每个 severity 对应的优先级位
const (
	PriEmerg   Priority = 1 << SevEmerg
	PriAlert   Priority = 1 << SevAlert
	PriCrit    Priority = 1 << SevCrit
	PriErr     Priority = 1 << SevErr
	PriWarning Priority = 1 << SevWarning
	PriNotice  Priority = 1 << SevNotice
	PriInfo    Priority = 1 << SevInfo
	PriDebug   Priority = 1 << SevDebug
)

// MaxServicePriority ServicePriority 接受的最大序号。
const MaxServicePriority = 23

// MakePriority 返回 severity 对应的优先级位。
func MakePriority(sev Severity) Priority {
	return 1 << uint(sev)
}

// ServicePriority 返回第 n 个服务自定义优先级位 0x100<<n，n 超过 23 时结果为 0。
func ServicePriority(n uint) Priority {
	if n > MaxServicePriority {
		return 0
	}
	return 0x100 << n
}

func (p Priority) String() string {
	return fmt.Sprintf("0x%x", uint32(p))
}

// IsService 是否为服务自定义优先级（高于 PriDebug）。
func (p Priority) IsService() bool {
	return p > PriDebug
}

// MapPriority 将优先级转为 severity。
//
// p 不大于 PriDebug 时，从 emerg 到 debug 取第一个置位的 severity，
// p 为 0 时为 emerg；服务自定义优先级一律为 debug。
func MapPriority(p Priority) Severity {
	if p > PriDebug {
		return SevDebug
	}
	for sev := SevEmerg; sev <= SevDebug; sev++ {
		if p&MakePriority(sev) != 0 {
			return sev
		}
	}
	return SevEmerg
}
