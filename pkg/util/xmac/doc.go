// Package xmac 提供 MAC-48 地址的格式化、解析与数值转换。
//
// 地址以 [6]byte 值类型 [Addr] 表示，可直接比较、用作 map key，并发安全。
// 字节序为最高有效字节在前，与线路上传输的八位组顺序一致。
//
// # 快速示例
//
//	addr := xmac.AddrFrom6([6]byte{0x00, 0x1a, 0x2b, 0x3c, 0x4d, 0x5e})
//	addr.String()                          // "00:1a:2b:3c:4d:5e"
//	addr.FormatString(xmac.FormatDot)      // "001a.2b3c.4d5e"
//
//	s, err := xmac.FormatUint64(0xffffffffffff) // "ff:ff:ff:ff:ff:ff"
//	_, err = xmac.FromUint64(0x1000000000000)   // ErrOutOfRange
//
// # 零值
//
// 零值 Addr{} 就是 00:00:00:00:00:00，[Addr.String] 照常输出 17 字符的完整格式。
// 需要区分"未设置"时请使用 [Addr.IsZero] 或指针类型。
//
// # 数值形式
//
// [Addr.Uint64] 与 [FromUint64] 在地址与 48 位整数之间转换，有效范围 0 ~ [MaxUint64]。
// 地址递增/递减（[Addr.Next]、[Addr.Prev]）基于数值形式实现。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xmac.Parse("invalid")
//	if errors.Is(err, xmac.ErrInvalidFormat) {
//	    // 格式错误
//	}
package xmac
