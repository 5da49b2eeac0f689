// Package xfile 提供路径校验与目录准备工具。
//
//   - [SanitizePath]: 规范化文件路径，拒绝空路径、空字节、相对路径穿越和目录路径
//   - [SafeJoin]: 将相对路径拼接到绝对 base 目录，保证结果不逃出 base
//   - [EnsureDir]: 确保文件的父目录存在
//
// 路径穿越按路径段精确匹配，只有独立的 ".." 段才被拒绝，"..config" 之类文件名合法。
//
// SafeJoin 不解析符号链接，返回的是经过校验的路径字符串，与实际文件操作之间存在
// TOCTOU 窗口，仅适用于可信环境下的路径构建（PID 文件、日志、转储目录）。
package xfile
