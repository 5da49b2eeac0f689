package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xops/pkg/config/xconf"
	"github.com/omeyang/xops/pkg/config/xroot"
	"github.com/omeyang/xops/pkg/observability/xlog"
	"github.com/omeyang/xops/pkg/observability/xslog"
	"github.com/omeyang/xops/pkg/util/xpid"
	"github.com/omeyang/xops/pkg/util/xproc"
	"github.com/omeyang/xops/pkg/util/xsort"
)

// 全局参数名
const (
	flagConfig    = "config"
	flagLogMask   = "log-mask"
	flagLogFormat = "log-format"
	flagLogFile   = "log-file"
	flagRunDir    = "run-dir"
	flagDumpDir   = "dump-dir"
)

const appIdent = "opsctl"

// settings 生效配置：配置文件打底，命令行参数覆盖。
type settings struct {
	Log struct {
		Mask   string `koanf:"mask"`
		Format string `koanf:"format"`
		File   string `koanf:"file"`
		Ident  string `koanf:"ident"`
	} `koanf:"log"`
	RunDir  string     `koanf:"run_dir"`
	DumpDir string     `koanf:"dump_dir"`
	Root    xroot.Dirs `koanf:"root"`
}

// defaultSettings 不含 run_dir 与 dump_dir，二者在根目录确定后由 [settings.resolveDirs] 补齐。
func defaultSettings() settings {
	var s settings
	s.Log.Format = xlog.FormatText
	s.Log.Ident = xproc.ProcessName()
	if s.Log.Ident == "" {
		s.Log.Ident = appIdent
	}
	return s
}

// resolveDirs 未配置的 run_dir 与 dump_dir 取数据根目录下的默认位置。
func (s *settings) resolveDirs() {
	if s.RunDir == "" {
		s.RunDir = s.Root.DataPath(xpid.DefaultRunDir)
	}
	if s.DumpDir == "" {
		s.DumpDir = s.Root.DataPath(xslog.DefaultDumpDir)
	}
}

// entries 按 "section.key" 展开生效配置。
func (s settings) entries(mask uint32) map[string]string {
	return map[string]string{
		"log.mask":          fmt.Sprintf("0x%x", mask),
		"log.format":        s.Log.Format,
		"log.file":          s.Log.File,
		"log.ident":         s.Log.Ident,
		"run_dir":           s.RunDir,
		"dump_dir":          s.DumpDir,
		"root.install_path": s.Root.Install,
		"root.data_path":    s.Root.Data,
	}
}

// app 持有一次命令执行期间的共享状态，由根命令的 Before 初始化。
type app struct {
	stdout io.Writer
	stderr io.Writer

	settings settings
	// maskFlag 命令行给出的 --log-mask，配置重载后仍优先于文件
	maskFlag string
	cfg      *xconf.Config
	sink     xlog.LoggerWithLevel
	log      *xslog.Logger
	registry *xpid.Registry
	cleanup  func() error
	// notFound 记录未知命令，cli 只打印帮助而不返回错误
	notFound error
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, settings: defaultSettings()}
}

func (a *app) command() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "YAML/JSON 配置文件",
			Sources: cli.EnvVars("OPSCTL_CONFIG"),
		},
		&cli.StringFlag{
			Name:  flagLogMask,
			Usage: "日志级别掩码，如 0x1c0（见 help-mask）",
		},
		&cli.StringFlag{
			Name:  flagLogFormat,
			Usage: "日志格式: text|json|journal",
		},
		&cli.StringFlag{
			Name:  flagLogFile,
			Usage: "日志文件（按大小轮转），默认输出到 stderr",
		},
		&cli.StringFlag{
			Name:  flagRunDir,
			Usage: "PID 文件目录",
		},
		&cli.StringFlag{
			Name:  flagDumpDir,
			Usage: "支持转储目录",
		},
	}
	flags = append(flags, xroot.Flags()...)

	root := &cli.Command{
		Name:      appIdent,
		Usage:     "网络守护进程运维工具",
		Version:   fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime),
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags:     flags,
		Before:    a.before,
		After:     a.after,
		// 退出码由 run 统一决定，不在库内调用 os.Exit
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Commands: []*cli.Command{
			a.macCommand(),
			a.wwnCommand(),
			a.pidCommand(),
			a.configCommand(),
			a.dumpCommand(),
			a.watchCommand(),
			helpMaskCommand(),
		},
	}
	a.handleUsage(root)
	return root
}

// handleUsage 为 cmd 及其所有子命令设置参数错误处理：
// 参数解析失败转为 [usageError]，未知命令记入 notFound。
func (a *app) handleUsage(cmd *cli.Command) {
	cmd.OnUsageError = func(_ context.Context, _ *cli.Command, err error, _ bool) error {
		return &usageError{msg: err.Error()}
	}
	cmd.CommandNotFound = func(_ context.Context, c *cli.Command, name string) {
		if a.notFound == nil {
			a.notFound = usagef("%s: 未知命令 %q", c.FullName(), name)
		}
	}
	for _, sub := range cmd.Commands {
		a.handleUsage(sub)
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if path := cmd.String(flagConfig); path != "" {
		cfg, err := xconf.New(path)
		if err != nil {
			return ctx, err
		}
		if err := cfg.Unmarshal("", &a.settings); err != nil {
			return ctx, err
		}
		a.cfg = cfg
	}
	a.applyFlags(cmd)

	mask, err := a.mask()
	if err != nil {
		return ctx, err
	}

	if err := a.buildLogger(xslog.NewPolicy(mask)); err != nil {
		return ctx, err
	}

	a.settings.Root = a.settings.Root.Merge(xroot.FromCommand(cmd))
	a.settings.resolveDirs()
	a.registry = xpid.NewRegistry(xpid.WithRunDir(a.settings.RunDir))
	return xroot.WithContext(ctx, a.settings.Root), nil
}

func (a *app) after(context.Context, *cli.Command) error {
	if a.cleanup == nil {
		return nil
	}
	return a.cleanup()
}

func (a *app) applyFlags(cmd *cli.Command) {
	override := func(dst *string, name string) {
		if cmd.IsSet(name) {
			*dst = cmd.String(name)
		}
	}
	override(&a.maskFlag, flagLogMask)
	override(&a.settings.Log.Mask, flagLogMask)
	override(&a.settings.Log.Format, flagLogFormat)
	override(&a.settings.Log.File, flagLogFile)
	override(&a.settings.RunDir, flagRunDir)
	override(&a.settings.DumpDir, flagDumpDir)
}

func (a *app) mask() (uint32, error) {
	return parseMaskSetting(a.settings.Log.Mask)
}

// reloadedMask 返回重载后的日志掩码，--log-mask 优先于配置文件。
func (a *app) reloadedMask(cfg *xconf.Config) (uint32, error) {
	if a.maskFlag != "" {
		return parseMaskSetting(a.maskFlag)
	}
	return parseMaskSetting(cfg.String("log.mask"))
}

func parseMaskSetting(s string) (uint32, error) {
	if s == "" {
		return xslog.DefaultMask, nil
	}
	mask, err := xslog.ParseMask(s)
	if err != nil {
		return 0, usagef("无效的日志掩码 %q: %v", s, err)
	}
	return mask, nil
}

// buildLogger 构建底层 xlog 与按掩码过滤的 xslog。
//
// journald 不可用时退回 text 格式并给出警告。
func (a *app) buildLogger(policy *xslog.Policy) error {
	switch strings.ToLower(a.settings.Log.Format) {
	case "", xlog.FormatText, xlog.FormatJSON, xlog.FormatJournal:
	default:
		return usagef("无效的日志格式 %q", a.settings.Log.Format)
	}

	sink, cleanup, err := a.newSink(a.settings.Log.Format)
	fellBack := false
	if errors.Is(err, xlog.ErrJournalUnavailable) {
		sink, cleanup, err = a.newSink(xlog.FormatText)
		fellBack = true
	}
	if err != nil {
		return fmt.Errorf("opsctl: logger: %w", err)
	}

	logger, err := xslog.New(policy, sink)
	if err != nil {
		_ = cleanup()
		return err
	}
	a.sink, a.log, a.cleanup = sink, logger, cleanup

	if fellBack {
		logger.Log(context.Background(), xslog.PriWarning, "journald unavailable, using text format")
	}
	return nil
}

func (a *app) newSink(format string) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(a.stderr).
		SetLevel(xlog.LevelDebug).
		SetFormat(format).
		SetIdent(a.settings.Log.Ident)
	if a.settings.Log.File != "" {
		b = b.SetRotation(a.settings.Log.File)
	}
	return b.Build()
}

// currentEntries 返回按名称排序的生效配置。
func (a *app) currentEntries() ([]xsort.Entry[string], error) {
	return xsort.Sort(a.settings.entries(a.log.Policy().Mask()), xsort.ByName[string])
}

// parseUint 解析命令行中的无符号整数，支持 0x 前缀。
func parseUint(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, usagef("无效的数值 %q", s)
	}
	return v, nil
}
