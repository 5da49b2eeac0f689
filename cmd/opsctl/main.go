// opsctl 是网络守护进程运维工具集的命令行入口。
//
// 用法:
//
//	opsctl [全局选项] <命令> [子命令] [参数]
//
// 全局选项:
//
//	-c, --config        YAML/JSON 配置文件
//	--log-mask          日志级别掩码（如 0x1c0），覆盖配置文件
//	--log-format        日志格式 text|json|journal（默认 text）
//	--run-dir           PID 文件目录（默认 <data_path>/var/run）
//	--dump-dir          支持转储目录（默认 <data_path>/run/sdump）
//	--install_path      安装根目录前缀
//	--data_path         数据根目录前缀
//
// 命令:
//
//	mac format <uint>      数值转 MAC 地址
//	mac parse <addr>       MAC 地址转数值
//	wwn format <uint>      数值转 WWN
//	wwn parse <addr>       WWN 转数值
//	pid record <file>      写入当前进程 PID
//	pid read <file>        读取 PID 文件
//	pid name <procname>    读取 <run-dir>/<procname>.pid
//	pid check <procname>   读取 PID 并探测进程是否存活
//	config                 按名称排序打印生效配置
//	dump <name>            将生效配置写入支持转储文件
//	watch                  监视配置文件，变更或 SIGHUP 时更新日志级别掩码
//	help-mask              日志掩码与根目录参数说明
//
// 退出码:
//
//	0: 成功
//	1: 执行失败
//	2: 参数错误
package main

import (
	"context"
	"io"
	"os"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// 信号只在 watch 中由 xrun 处理，其余命令都是一次性的。
func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run 执行命令并返回退出码。
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	err := a.command().Run(ctx, args)
	if err == nil {
		err = a.notFound
	}
	return a.exitCode(err)
}
