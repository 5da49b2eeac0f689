// Package xwwn 提供 8 字节 World Wide Name（存储网络标识）的格式化与解析。
//
// 输出格式与 MAC 地址一致，但为 8 组：
//
//	xwwn.AddrFrom8([8]byte{0x10, 0, 0, 0, 0xc9, 0x3d, 0x4e, 0x01}).String()
//	// "10:00:00:00:c9:3d:4e:01"
//
// WWN 的全部 64 位数值都是合法的，因此 [FromUint64] 不会失败。
package xwwn

import (
	"errors"
	"fmt"

	"github.com/omeyang/xops/pkg/util/xoctet"
)

// Len WWN 字节数。
const Len = 8

// StrLen 字符串格式（xx:xx:xx:xx:xx:xx:xx:xx）的字符数。
const StrLen = 3*Len - 1

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidFormat 表示 WWN 字符串格式无效。
	ErrInvalidFormat = errors.New("xwwn: invalid format")

	// ErrInvalidLength 表示 WWN 长度不正确（期望 8 字节）。
	ErrInvalidLength = errors.New("xwwn: invalid length")

	// ErrOverflow 表示地址运算溢出。
	ErrOverflow = errors.New("xwwn: address overflow")

	// ErrNilReceiver 表示在 nil *Addr 上调用了反序列化方法。
	ErrNilReceiver = errors.New("xwwn: nil receiver")
)

// Addr 表示 64 位 World Wide Name，不可变值类型。
type Addr struct {
	bytes [Len]byte
}

// AddrFrom8 从 8 字节数组创建 WWN。
func AddrFrom8(b [Len]byte) Addr {
	return Addr{bytes: b}
}

// FromUint64 从 64 位整数创建 WWN。
func FromUint64(v uint64) Addr {
	var a Addr
	xoctet.PutUint64(a.bytes[:], v)
	return a
}

// ParseBytes 从长度为 8 的字节切片创建 WWN。
func ParseBytes(b []byte) (Addr, error) {
	if len(b) != Len {
		return Addr{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, Len, len(b))
	}
	return Addr{bytes: [Len]byte(b)}, nil
}

// Parse 解析冒号或短线分隔的 8 组十六进制字符串，大小写不敏感。
func Parse(s string) (Addr, error) {
	b, err := xoctet.Parse(s, Len)
	if err != nil {
		if errors.Is(err, xoctet.ErrInvalidFormat) {
			return Addr{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		return Addr{}, fmt.Errorf("%w: %w", ErrInvalidLength, err)
	}
	return Addr{bytes: [Len]byte(b)}, nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
func MustParse(s string) Addr {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xwwn.MustParse(%q): %v", s, err))
	}
	return a
}

// Bytes 返回 8 字节副本。
func (a Addr) Bytes() [Len]byte {
	return a.bytes
}

// Uint64 返回 WWN 的整数形式。
func (a Addr) Uint64() uint64 {
	return xoctet.ToUint64(a.bytes[:])
}

// Next 返回 a+1。a 为全 ff 时返回 [ErrOverflow]。
func (a Addr) Next() (Addr, error) {
	v := a.Uint64()
	if v == ^uint64(0) {
		return Addr{}, ErrOverflow
	}
	return FromUint64(v + 1), nil
}

// String 返回小写冒号格式，每个八位组固定两位。
func (a Addr) String() string {
	return xoctet.Format(a.bytes[:])
}

// MarshalText 实现 [encoding.TextMarshaler]。
func (a Addr) MarshalText() ([]byte, error) {
	return xoctet.AppendFormat(make([]byte, 0, StrLen), a.bytes[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，空输入设置为零值。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*a = Addr{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
