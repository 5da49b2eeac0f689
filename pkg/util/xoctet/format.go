package xoctet

// 十六进制字符表。
const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// Format 返回小写冒号分隔格式，每个八位组固定两位（保留前导零）。
//
//	Format([]byte{0x00, 0x1a, 0x2b}) // "00:1a:2b"
//
// 空输入返回空字符串。
func Format(b []byte) string {
	return format(b, ':', hexLower)
}

// FormatUpper 返回大写冒号分隔格式。
func FormatUpper(b []byte) string {
	return format(b, ':', hexUpper)
}

// FormatSep 使用指定分隔符返回小写格式。
func FormatSep(b []byte, sep byte) string {
	return format(b, sep, hexLower)
}

// AppendFormat 将 b 的小写冒号格式追加到 dst 并返回扩展后的切片。
// 供需要零分配格式化的调用方（如 MarshalText）使用。
func AppendFormat(dst, b []byte) []byte {
	for i, c := range b {
		if i > 0 {
			dst = append(dst, ':')
		}
		dst = append(dst, hexLower[c>>4], hexLower[c&0x0f])
	}
	return dst
}

// format 预分配精确大小（每组 2 字符 + n-1 个分隔符），一次拷贝成字符串。
func format(b []byte, sep byte, hex string) string {
	if len(b) == 0 {
		return ""
	}
	buf := make([]byte, 0, 3*len(b)-1)
	for i, c := range b {
		if i > 0 {
			buf = append(buf, sep)
		}
		buf = append(buf, hex[c>>4], hex[c&0x0f])
	}
	return string(buf)
}
