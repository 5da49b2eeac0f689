package xlog

import (
	"fmt"
	"log/slog"
)

// 常用属性 key
const (
	KeyError     = "error"
	KeyComponent = "component"
	KeyPath      = "path"
	KeyPID       = "pid"
	KeyMask      = "mask"
	KeyPriority  = "priority"
	KeyReason    = "reason"
	KeyCode      = "code"
)

// Err 创建错误属性，err 为 nil 时返回空属性（会被 slog 忽略）。
//
//	if err != nil {
//	    logger.Error(ctx, "record pid failed", xlog.Err(err))
//	}
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Component 标识日志来源组件。
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Path 文件路径属性。
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// PID 进程 ID 属性。
func PID(pid int) slog.Attr {
	return slog.Int(KeyPID, pid)
}

// Mask 以十六进制输出的位掩码属性，如 mask=0x1c0。
func Mask(m uint32) slog.Attr {
	return slog.String(KeyMask, hex(m))
}

// Priority 以十六进制输出的日志优先级位属性。
func Priority(p uint32) slog.Attr {
	return slog.String(KeyPriority, hex(p))
}

func hex(v uint32) string {
	return fmt.Sprintf("0x%x", v)
}
