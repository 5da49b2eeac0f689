package xslog

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// DefaultMask 默认级别掩码，只输出 notice 及更重要的消息。
const DefaultMask uint32 = 0

// Policy 进程级的日志级别掩码，可并发读写。
//
// 进程启动时创建并显式传递给 [Logger]，运行时可通过 [Policy.SetMask] 调整。
type Policy struct {
	mask atomic.Uint32
}

// NewPolicy 创建 Policy。
func NewPolicy(mask uint32) *Policy {
	p := &Policy{}
	p.mask.Store(mask)
	return p
}

// Mask 返回当前掩码。
func (p *Policy) Mask() uint32 { return p.mask.Load() }

// SetMask 替换掩码，返回旧值。
func (p *Policy) SetMask(mask uint32) uint32 { return p.mask.Swap(mask) }

// Enabled 判断优先级 pri 是否输出：pri <= PriNotice 或与掩码有交集。
func (p *Policy) Enabled(pri Priority) bool {
	return pri <= PriNotice || p.mask.Load()&uint32(pri) != 0
}

// ParseMask 解析掩码字符串，支持 0x 前缀十六进制、0 前缀八进制和十进制。
func ParseMask(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("xslog: invalid mask %q: %w", s, err)
	}
	return uint32(v), nil
}

// Usage 级别掩码的帮助文本，用于命令行 --help。
const Usage = "" +
	"       Logging enable mask format is ...\n" +
	"          0x00000001-0x00000020 reserved for LOG_EMERG-LOG_NOTICE,\n" +
	"                                which are always enabled.\n" +
	"          0x00000040 enable LOG_INFO level messages.\n" +
	"          0x00000080 enable LOG_DEBUG level messages.\n" +
	"          0x00000100-0x80000000 enable locally defined facility levels.\n" +
	"          NOTE: messages with locally defined facility levels always\n" +
	"                result in a LOG_DEBUG message.\n"
