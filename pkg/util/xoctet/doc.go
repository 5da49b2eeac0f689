// Package xoctet 提供定长大端字节序列与 uint64、冒号十六进制字符串之间的转换。
//
// xmac（6 字节）和 xwwn（8 字节）都建立在本包之上，本包本身不关心长度语义，
// 长度由调用方按次指定。
//
// # 字节序
//
// 所有函数均按最高有效字节在前（网络字节序）处理：
//
//	xoctet.ToUint64([]byte{0x01, 0x02})   // 0x0102
//	xoctet.FromUint64(0x0102, 4)          // [0x00 0x00 0x01 0x02]
//	xoctet.Format([]byte{0x00, 0x1a})     // "00:1a"
//
// 对 0 <= n <= 8 且 v < 2^(8n)，始终满足 ToUint64(FromUint64(v, n)) == v。
//
// # 长度超过 8 字节
//
// [ToUint64] 对超过 8 字节的输入不报错：高位字节在左移中被丢弃，结果等于最后 8 字节的值。
// [PutUint64] 对超过 8 字节的输出缓冲区，把超出部分的前导字节写为 0。
// 这两种行为都是有意保留的截断语义，调用方需自行保证长度在 1~8 之间才能得到有意义的结果。
//
// # 错误处理
//
// [Parse] 返回的错误支持 errors.Is 判断：[ErrEmpty]、[ErrInvalidFormat]、[ErrInvalidLength]。
package xoctet
