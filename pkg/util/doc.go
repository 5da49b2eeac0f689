// Package util 提供守护进程共用的小工具子包。
//
// 子包列表：
//   - xoctet: 定长大端八位组与 uint64 互转、"xx:xx:..." 格式化与解析
//   - xmac: MAC-48 地址，数值与字符串互转、多格式输出
//   - xwwn: 8 字节 World Wide Name
//   - xpid: PID 文件读写，按进程名管理运行目录下的 .pid
//   - xproc: 当前进程 PID、进程名，按 PID 探测进程是否存活
//   - xfile: 路径校验、安全拼接、父目录创建
//   - xsort: 按比较函数排序的名称-值列表
//
// 设计原则：
//   - 只依赖标准库与 golang.org/x/sys
//   - 错误使用包级哨兵值，OS 错误原样包装
package util
