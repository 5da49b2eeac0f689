// Package xpid 提供 PID 文件的写入与读取。
//
// PID 文件为纯文本：一个十进制整数加换行，例如 "1234\n"。
//
// # 基本用法
//
//	if err := xpid.Record("/var/run/lldpd.pid"); err != nil { ... }
//	pid, err := xpid.Read("/var/run/lldpd.pid")
//	pid, err = xpid.ReadByName("lldpd") // 读取 /var/run/lldpd.pid
//
// 运行目录不写死时使用 [Registry]：
//
//	reg := xpid.NewRegistry(xpid.WithRunDir("/run/ops"))
//	pid, alive, err := reg.Running("lldpd")
//
// # 错误分类
//
//   - I/O 失败：保留底层 *fs.PathError，可用 errors.Is(err, fs.ErrNotExist) 等判断
//   - 内容不是整数：[ErrInvalidFormat]，与 I/O 失败区分
//   - 进程名非法：[ErrInvalidName]
//
// 所有函数都不做重试；打开的文件在返回前一律关闭。
package xpid
