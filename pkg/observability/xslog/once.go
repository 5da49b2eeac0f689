package xslog

// OnceMask 按位记录哪些上下文已被抑制，置位表示不再输出。
//
// 方法不加锁；nil 接收者上的 Set/Clear 为空操作。
type OnceMask uint32

// Set 抑制 id 中的所有位。
func (m *OnceMask) Set(id uint32) {
	if m != nil {
		*m |= OnceMask(id)
	}
}

// Clear 解除 id 中所有位的抑制。
func (m *OnceMask) Clear(id uint32) {
	if m != nil {
		*m &^= OnceMask(id)
	}
}

// Suppressed 报告 id 是否与已抑制的位有交集。nil 视为全部抑制。
func (m *OnceMask) Suppressed(id uint32) bool {
	if m == nil {
		return true
	}
	return uint32(*m)&id != 0
}
