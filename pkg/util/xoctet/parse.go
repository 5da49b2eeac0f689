package xoctet

import (
	"fmt"
	"strings"
)

// Parse 解析恰好 n 个八位组的分隔十六进制字符串，是 [Format] 的逆操作。
//
// 每组必须为两位十六进制字符，分隔符为 ':' 或 '-'，且全串一致。
// 大小写不敏感，首尾空白会被去除。
func Parse(s string, n int) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	if n <= 0 || len(s) != 3*n-1 {
		return nil, fmt.Errorf("%w: expected %d octets, got %d characters", ErrInvalidLength, n, len(s))
	}

	var sep byte
	if n > 1 {
		sep = s[2]
		if sep != ':' && sep != '-' {
			return nil, fmt.Errorf("%w: unexpected separator %q", ErrInvalidFormat, sep)
		}
	}

	out := make([]byte, n)
	for i := range n {
		off := i * 3
		if i > 0 && s[off-1] != sep {
			return nil, fmt.Errorf("%w: inconsistent separators", ErrInvalidFormat)
		}
		b, ok := parseHexByte(s[off], s[off+1])
		if !ok {
			return nil, fmt.Errorf("%w: invalid hex at position %d", ErrInvalidFormat, off)
		}
		out[i] = b
	}
	return out, nil
}

// ParseHexByte 解析两个十六进制字符为一个字节。
func ParseHexByte(high, low byte) (byte, bool) {
	return parseHexByte(high, low)
}

func parseHexByte(high, low byte) (byte, bool) {
	h := hexValue(high)
	l := hexValue(low)
	if h < 0 || l < 0 {
		return 0, false
	}
	return byte(h<<4 | l), true
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
