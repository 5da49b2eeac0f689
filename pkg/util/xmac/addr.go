package xmac

import (
	"net"

	"github.com/omeyang/xops/pkg/util/xoctet"
)

// Len MAC 地址字节数。
const Len = 6

// MaxUint64 48 位 MAC 地址的最大数值。
const MaxUint64 uint64 = 0xffffffffffff

// Addr 表示 48 位 MAC 地址（EUI-48/MAC-48）。
//
// Addr 是不可变值类型，可直接比较（==）和用作 map key。
type Addr struct {
	bytes [Len]byte
}

// AddrFrom6 从 6 字节数组创建 MAC 地址。
func AddrFrom6(b [Len]byte) Addr {
	return Addr{bytes: b}
}

// FromUint64 从 48 位整数创建 MAC 地址。
// v > [MaxUint64] 时返回 [ErrOutOfRange]。
func FromUint64(v uint64) (Addr, error) {
	if v > MaxUint64 {
		return Addr{}, ErrOutOfRange
	}
	var a Addr
	xoctet.PutUint64(a.bytes[:], v)
	return a, nil
}

// Bytes 返回地址的 6 字节副本。
func (a Addr) Bytes() [Len]byte {
	return a.bytes
}

// Uint64 返回地址的 48 位整数形式。
func (a Addr) Uint64() uint64 {
	return xoctet.ToUint64(a.bytes[:])
}

// Compare 按网络字节序比较两个地址。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
func (a Addr) Compare(b Addr) int {
	x, y := a.Uint64(), b.Uint64()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Next 返回 a+1。a 为广播地址时返回 [ErrOverflow]。
func (a Addr) Next() (Addr, error) {
	v := a.Uint64()
	if v == MaxUint64 {
		return Addr{}, ErrOverflow
	}
	return FromUint64(v + 1)
}

// Prev 返回 a-1。a 为全零地址时返回 [ErrUnderflow]。
func (a Addr) Prev() (Addr, error) {
	v := a.Uint64()
	if v == 0 {
		return Addr{}, ErrUnderflow
	}
	return FromUint64(v - 1)
}

// IsZero 报告 a 是否为全零地址。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// IsBroadcast 报告 a 是否为广播地址 ff:ff:ff:ff:ff:ff。
func (a Addr) IsBroadcast() bool {
	return a.Uint64() == MaxUint64
}

// IsMulticast 报告 a 是否为多播地址（首字节 bit 0 为 1）。
// 广播地址也是多播地址。
func (a Addr) IsMulticast() bool {
	return a.bytes[0]&0x01 == 0x01
}

// IsLocallyAdministered 报告 a 是否为本地管理地址（首字节 bit 1 为 1）。
func (a Addr) IsLocallyAdministered() bool {
	return a.bytes[0]&0x02 == 0x02
}

// OUI 返回前 3 字节的组织唯一标识符。
func (a Addr) OUI() [3]byte {
	return [3]byte{a.bytes[0], a.bytes[1], a.bytes[2]}
}

// HardwareAddr 返回 [net.HardwareAddr] 副本。
func (a Addr) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, Len)
	copy(hw, a.bytes[:])
	return hw
}
