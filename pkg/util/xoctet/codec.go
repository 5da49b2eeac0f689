package xoctet

// ToUint64 将大端字节序列折叠为 uint64：对每个字节执行 v = v<<8 | b。
//
// len(b) > 8 时高位字节被移出，不报错（见包文档）。
// 空切片返回 0。
func ToUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

// PutUint64 将 v 按大端序写入 out 的全部 len(out) 个字节。
//
// out[len(out)-1] 为最低字节，从后向前填充；v 被移位耗尽后剩余前导字节为 0。
// 若 v 超出 len(out) 字节可表示的范围，高位被截断。
func PutUint64(out []byte, v uint64) {
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
}

// FromUint64 返回 v 的 n 字节大端表示。
// n < 0 返回 nil，n == 0 返回空切片。
func FromUint64(v uint64, n int) []byte {
	if n < 0 {
		return nil
	}
	out := make([]byte, n)
	PutUint64(out, v)
	return out
}
