// Package xroot 描述守护进程的安装根目录与数据根目录。
//
// 进程在启动时从命令行得到 [Dirs]，再显式传给需要拼接路径的组件：
//
//	dirs := xroot.FromCommand(cmd)
//	schema := dirs.InstallPath("/usr/share/opsd/schema.json")
//	db := dirs.DataPath("/var/lib/opsd/db")
//
// 根目录为空时路径原样返回，用于正常安装；非空时作为前缀，用于
// 在开发机或测试中把整个文件系统布局挪到某个目录下。
package xroot

import (
	"context"
	"path/filepath"

	"github.com/urfave/cli/v3"
)

// 命令行参数名
const (
	FlagInstallPath = "install_path"
	FlagDataPath    = "data_path"
)

// 环境变量名
const (
	EnvInstallPath = "OPS_INSTALL_PATH"
	EnvDataPath    = "OPS_DATA_PATH"
)

// Usage 根目录参数的帮助文本。
const Usage = "\nRoot Dir options:\n" +
	"  -install_path=PATH  path to installed files root dir\n" +
	"  -data_path=PATH     path to daemon data files root dir\n"

// Dirs 安装根目录与数据根目录，零值表示均为 "/"。
type Dirs struct {
	Install string `koanf:"install_path"`
	Data    string `koanf:"data_path"`
}

// InstallPath 返回安装根目录下的 rel。
func (d Dirs) InstallPath(rel string) string {
	return prefix(d.Install, rel)
}

// DataPath 返回数据根目录下的 rel。
func (d Dirs) DataPath(rel string) string {
	return prefix(d.Data, rel)
}

func prefix(root, rel string) string {
	if root == "" {
		return rel
	}
	return filepath.Join(root, rel)
}

// Merge 用 other 中非空的字段覆盖 d。
func (d Dirs) Merge(other Dirs) Dirs {
	if other.Install != "" {
		d.Install = other.Install
	}
	if other.Data != "" {
		d.Data = other.Data
	}
	return d
}

// Flags 返回 --install_path 与 --data_path 参数定义，也可从环境变量读取。
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagInstallPath,
			Usage:   "path to installed files root dir",
			Sources: cli.EnvVars(EnvInstallPath),
		},
		&cli.StringFlag{
			Name:    FlagDataPath,
			Usage:   "path to daemon data files root dir",
			Sources: cli.EnvVars(EnvDataPath),
		},
	}
}

// FromCommand 从已解析的命令读取根目录。
func FromCommand(cmd *cli.Command) Dirs {
	return Dirs{
		Install: cmd.String(FlagInstallPath),
		Data:    cmd.String(FlagDataPath),
	}
}

type ctxKey struct{}

// WithContext 将 d 存入 ctx。
func WithContext(ctx context.Context, d Dirs) context.Context {
	return context.WithValue(ctx, ctxKey{}, d)
}

// FromContext 取出 ctx 中的根目录，不存在时返回零值。
func FromContext(ctx context.Context) Dirs {
	d, _ := ctx.Value(ctxKey{}).(Dirs)
	return d
}
