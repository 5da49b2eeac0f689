package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xops/pkg/config/xconf"
	"github.com/omeyang/xops/pkg/config/xroot"
	"github.com/omeyang/xops/pkg/lifecycle/xrun"
	"github.com/omeyang/xops/pkg/observability/xlog"
	"github.com/omeyang/xops/pkg/observability/xslog"
	"github.com/omeyang/xops/pkg/util/xmac"
	"github.com/omeyang/xops/pkg/util/xpid"
	"github.com/omeyang/xops/pkg/util/xwwn"
)

// oneArg 取出唯一的位置参数，数量不符时返回参数错误。
func oneArg(cmd *cli.Command, name string) (string, error) {
	args := cmd.Args()
	if args.Len() != 1 {
		return "", usagef("%s 需要一个参数 <%s>", cmd.FullName(), name)
	}
	return args.First(), nil
}

// ============================================================
// mac / wwn
// ============================================================

func (a *app) macCommand() *cli.Command {
	return &cli.Command{
		Name:  "mac",
		Usage: "MAC 地址与数值互转",
		Commands: []*cli.Command{
			{
				Name:      "format",
				Usage:     "数值转 MAC 地址",
				ArgsUsage: "<uint>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					arg, err := oneArg(cmd, "uint")
					if err != nil {
						return err
					}
					v, err := parseUint(arg)
					if err != nil {
						return err
					}
					s, err := xmac.FormatUint64(v)
					if err != nil {
						return err
					}
					fmt.Fprintln(a.stdout, s)
					return nil
				},
			},
			{
				Name:      "parse",
				Usage:     "MAC 地址转数值",
				ArgsUsage: "<addr>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					arg, err := oneArg(cmd, "addr")
					if err != nil {
						return err
					}
					addr, err := xmac.Parse(arg)
					if err != nil {
						return err
					}
					fmt.Fprintf(a.stdout, "0x%012x\n", addr.Uint64())
					return nil
				},
			},
		},
	}
}

func (a *app) wwnCommand() *cli.Command {
	return &cli.Command{
		Name:  "wwn",
		Usage: "WWN 与数值互转",
		Commands: []*cli.Command{
			{
				Name:      "format",
				Usage:     "数值转 WWN",
				ArgsUsage: "<uint>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					arg, err := oneArg(cmd, "uint")
					if err != nil {
						return err
					}
					v, err := parseUint(arg)
					if err != nil {
						return err
					}
					fmt.Fprintln(a.stdout, xwwn.FromUint64(v))
					return nil
				},
			},
			{
				Name:      "parse",
				Usage:     "WWN 转数值",
				ArgsUsage: "<addr>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					arg, err := oneArg(cmd, "addr")
					if err != nil {
						return err
					}
					addr, err := xwwn.Parse(arg)
					if err != nil {
						return err
					}
					fmt.Fprintf(a.stdout, "0x%016x\n", addr.Uint64())
					return nil
				},
			},
		},
	}
}

// ============================================================
// pid
// ============================================================

func (a *app) pidCommand() *cli.Command {
	return &cli.Command{
		Name:  "pid",
		Usage: "PID 文件读写",
		Commands: []*cli.Command{
			{
				Name:      "record",
				Usage:     "写入当前进程 PID",
				ArgsUsage: "<file>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					file, err := oneArg(cmd, "file")
					if err != nil {
						return err
					}
					if err := xpid.Record(file); err != nil {
						return err
					}
					a.log.Log(ctx, xslog.PriInfo, "pid file recorded", xlog.Path(file))
					return nil
				},
			},
			{
				Name:      "read",
				Usage:     "读取 PID 文件",
				ArgsUsage: "<file>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					file, err := oneArg(cmd, "file")
					if err != nil {
						return err
					}
					pid, err := xpid.Read(file)
					if err != nil {
						return err
					}
					fmt.Fprintln(a.stdout, pid)
					return nil
				},
			},
			{
				Name:      "name",
				Usage:     "读取 <run-dir>/<procname>.pid",
				ArgsUsage: "<procname>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					name, err := oneArg(cmd, "procname")
					if err != nil {
						return err
					}
					pid, err := a.registry.Read(name)
					if err != nil {
						return err
					}
					fmt.Fprintln(a.stdout, pid)
					return nil
				},
			},
			{
				Name:      "check",
				Usage:     "读取 PID 并探测进程是否存活，不存活时退出码为 1",
				ArgsUsage: "<procname>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					name, err := oneArg(cmd, "procname")
					if err != nil {
						return err
					}
					pid, alive, err := a.registry.Running(name)
					if err != nil {
						return err
					}
					if !alive {
						fmt.Fprintf(a.stdout, "%s: pid %d not running\n", name, pid)
						return cli.Exit("", exitFailure)
					}
					fmt.Fprintf(a.stdout, "%s: pid %d running\n", name, pid)
					return nil
				},
			},
			{
				Name:      "remove",
				Usage:     "删除 <run-dir>/<procname>.pid",
				ArgsUsage: "<procname>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					name, err := oneArg(cmd, "procname")
					if err != nil {
						return err
					}
					return a.registry.Remove(name)
				},
			},
		},
	}
}

// ============================================================
// config / dump
// ============================================================

func (a *app) configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "按名称排序打印生效配置",
		Action: func(context.Context, *cli.Command) error {
			entries, err := a.currentEntries()
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(a.stdout, "%s=%s\n", e.Name, e.Value)
			}
			return nil
		},
	}
}

func (a *app) dumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "将生效配置写入 <dump-dir>/<name>",
		ArgsUsage: "<name>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name, err := oneArg(cmd, "name")
			if err != nil {
				return err
			}
			entries, err := a.currentEntries()
			if err != nil {
				return err
			}

			d, err := a.log.OpenDump(ctx, a.settings.DumpDir, name)
			if err != nil {
				return err
			}
			for _, e := range entries {
				if _, err := d.Printf("%-20s %s\n", e.Name, e.Value); err != nil {
					_ = d.Close()
					return err
				}
			}
			if err := d.Close(); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, d.Path())
			return nil
		},
	}
}

// ============================================================
// watch
// ============================================================

const flagPIDName = "pid-name"

func (a *app) watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "监视配置文件，变更时更新日志级别掩码，直到收到信号",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagPIDName,
				Usage: "运行期间在 <run-dir>/<name>.pid 记录 PID",
			},
		},
		Action: a.watch,
	}
}

func (a *app) watch(ctx context.Context, cmd *cli.Command) error {
	if a.cfg == nil {
		return usagef("watch 需要 --%s", flagConfig)
	}

	if name := cmd.String(flagPIDName); name != "" {
		if err := a.registry.Record(name); err != nil {
			return err
		}
		defer func() {
			if err := a.registry.Remove(name); err != nil {
				a.log.Log(context.Background(), xslog.PriErr, "remove pid file failed", xlog.Err(err))
			}
		}()
	}

	w, err := xconf.Watch(a.cfg, func(cfg *xconf.Config, err error) {
		a.onConfigChange(ctx, cfg, err)
	})
	if err != nil {
		return err
	}

	dirs := xroot.FromContext(ctx)
	a.log.Start(ctx)
	a.log.Log(ctx, xslog.PriInfo, "watching config",
		xlog.Path(a.cfg.Path()),
		slog.String(xroot.FlagInstallPath, dirs.Install),
		slog.String(xroot.FlagDataPath, dirs.Data))

	err = xrun.Run(ctx, []xrun.Option{
		xrun.WithName("watch"),
		xrun.WithLogger(a.sink),
		xrun.WithReload(func(ctx context.Context) error {
			if err := a.cfg.Reload(); err != nil {
				return err
			}
			a.onConfigChange(ctx, a.cfg, nil)
			return nil
		}),
	}, w.Run)

	reason := stopReason(ctx)
	if errors.Is(err, xrun.ErrSignal) {
		reason, err = err.Error(), nil
	}
	a.log.Stop(context.Background(), reason)
	return err
}

// onConfigChange 重载后只更新日志掩码，其余配置需重启生效。
// 文件变更与 SIGHUP 都会触发。
func (a *app) onConfigChange(ctx context.Context, cfg *xconf.Config, err error) {
	if err != nil {
		a.log.Log(ctx, xslog.PriErr, "config reload failed", xlog.Err(err))
		return
	}
	mask, err := a.reloadedMask(cfg)
	if err != nil {
		a.log.Log(ctx, xslog.PriErr, "config reload failed", xlog.Err(err))
		return
	}
	old := a.log.Policy().SetMask(mask)
	if old != mask {
		a.log.Log(ctx, xslog.PriNotice, "log mask changed",
			slog.String("old", fmt.Sprintf("0x%x", old)), xlog.Mask(mask))
	}
}

func stopReason(ctx context.Context) string {
	if err := context.Cause(ctx); err != nil {
		return err.Error()
	}
	return "watcher closed"
}

// ============================================================
// help-mask
// ============================================================

func helpMaskCommand() *cli.Command {
	return &cli.Command{
		Name:  "help-mask",
		Usage: "显示日志掩码与根目录参数说明",
		Action: func(_ context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer
			fmt.Fprint(w, xslog.Usage)
			fmt.Fprint(w, strings.TrimPrefix(xroot.Usage, "\n"))
			return nil
		},
	}
}
