package xmac

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/omeyang/xops/pkg/util/xoctet"
)

// Parse 解析 MAC 地址字符串。
//
// 支持的格式：
//   - 冒号/短线分隔：aa:bb:cc:dd:ee:ff、AA-BB-CC-DD-EE-FF
//   - 点分隔：aabb.ccdd.eeff
//   - 无分隔：aabbccddeeff
//
// 输入会自动去除首尾空白，大小写不敏感。
func Parse(s string) (Addr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Addr{}, ErrEmpty
	}

	switch {
	case len(s) == StrLen && (s[2] == ':' || s[2] == '-'):
		b, err := xoctet.Parse(s, Len)
		if err != nil {
			return Addr{}, mapOctetErr(err)
		}
		return Addr{bytes: [Len]byte(b)}, nil
	case len(s) == 2*Len && !strings.ContainsAny(s, ":-."):
		return parseContiguous(s, 0, 2, 4, 6, 8, 10)
	case len(s) == 14 && s[4] == '.' && s[9] == '.':
		return parseContiguous(s, 0, 2, 5, 7, 10, 12)
	}

	// 其他格式回退到标准库（如单数字分组）
	hw, err := net.ParseMAC(s)
	if err != nil {
		return Addr{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return ParseBytes(hw)
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// ParseBytes 从长度为 6 的字节切片创建 MAC 地址。
func ParseBytes(b []byte) (Addr, error) {
	if len(b) != Len {
		return Addr{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, Len, len(b))
	}
	return Addr{bytes: [Len]byte(b)}, nil
}

// parseContiguous 按给定偏移读取 6 个两字符十六进制组。
func parseContiguous(s string, offsets ...int) (Addr, error) {
	var a Addr
	for i, off := range offsets {
		b, ok := xoctet.ParseHexByte(s[off], s[off+1])
		if !ok {
			return Addr{}, fmt.Errorf("%w: invalid hex at position %d", ErrInvalidFormat, off)
		}
		a.bytes[i] = b
	}
	return a, nil
}

// mapOctetErr 将 xoctet 错误映射为本包错误，保留原始信息。
func mapOctetErr(err error) error {
	if errors.Is(err, xoctet.ErrInvalidLength) {
		return fmt.Errorf("%w: %w", ErrInvalidLength, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
}
