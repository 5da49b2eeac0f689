package xlog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/omeyang/xops/pkg/observability/xrotate"
)

var errNilOutput = errors.New("xlog: nil output")

// 输出格式
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatJournal = "journal"
)

// ReplaceAttrFunc 属性替换函数，返回空 Key 的 Attr 表示移除该属性。
//
//	func(groups []string, a slog.Attr) slog.Attr {
//	    if a.Key == "password" {
//	        return slog.String("password", "***")
//	    }
//	    return a
//	}
type ReplaceAttrFunc func(groups []string, a slog.Attr) slog.Attr

// Builder 日志配置构建器
//
// first-error-wins：遇到第一个配置错误后，Build 返回该错误。
type Builder struct {
	output      io.Writer
	levelVar    *slog.LevelVar
	format      string
	ident       string
	addSource   bool
	replaceAttr ReplaceAttrFunc
	rotator     *xrotate.Rotator
	onError     func(error)
	err         error
}

// New 创建配置构建器，默认 stderr、Info 级别、text 格式。
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)

	return &Builder{
		output:   os.Stderr,
		levelVar: levelVar,
		format:   FormatText,
	}
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// SetOutput 设置日志输出目标，journal 格式下忽略
func (b *Builder) SetOutput(w io.Writer) *Builder {
	if w == nil {
		return b.fail(errNilOutput)
	}
	b.output = w
	return b
}

// SetLevel 设置日志级别
func (b *Builder) SetLevel(level Level) *Builder {
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 通过字符串设置日志级别
func (b *Builder) SetLevelString(s string) *Builder {
	level, err := ParseLevel(s)
	if err != nil {
		return b.fail(err)
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式：text、json 或 journal，空值视为 text
func (b *Builder) SetFormat(format string) *Builder {
	normalized := strings.ToLower(strings.TrimSpace(format))
	switch normalized {
	case "":
		b.format = FormatText
	case FormatText, FormatJSON, FormatJournal:
		b.format = normalized
	default:
		return b.fail(fmt.Errorf("xlog: unknown format %q", format))
	}
	return b
}

// SetIdent 设置程序标识
//
// journal 格式写入 SYSLOG_IDENTIFIER；text/json 格式作为固定属性 "ident" 输出。
func (b *Builder) SetIdent(ident string) *Builder {
	b.ident = ident
	return b
}

// SetAddSource 是否在日志中添加源码位置
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// SetRotation 输出到按大小轮转的文件，cleanup 时关闭
func (b *Builder) SetRotation(filename string, opts ...xrotate.Option) *Builder {
	if b.err != nil {
		return b
	}
	if b.rotator != nil {
		_ = b.rotator.Close()
	}
	r, err := xrotate.New(filename, opts...)
	if err != nil {
		return b.fail(err)
	}
	b.rotator = r
	b.output = r
	return b
}

// SetOnError 设置 handler 写入失败时的回调
//
// 回调在日志调用方同步执行，应保持轻量；回调 panic 会被隔离。
func (b *Builder) SetOnError(fn func(error)) *Builder {
	b.onError = fn
	return b
}

// SetReplaceAttr 设置属性替换函数（字段重命名、脱敏、过滤）
func (b *Builder) SetReplaceAttr(fn ReplaceAttrFunc) *Builder {
	b.replaceAttr = fn
	return b
}

// Build 构建 Logger
//
// 返回的 cleanup 幂等，用于关闭轮转文件。出错时已打开的轮转文件会被关闭。
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.err != nil {
		b.closeRotator()
		return nil, nil, b.err
	}

	handler, err := b.handler()
	if err != nil {
		b.closeRotator()
		return nil, nil, err
	}

	logger := &xlogger{
		handler:    handler,
		levelVar:   b.levelVar,
		onError:    b.onError,
		errorCount: new(atomic.Uint64),
		addSource:  b.addSource,
		inOnError:  new(atomic.Bool),
	}
	return logger, b.cleanup(), nil
}

func (b *Builder) handler() (slog.Handler, error) {
	if b.format == FormatJournal {
		jh, err := NewJournalHandler(JournalOptions{
			Level:       b.levelVar,
			Ident:       b.ident,
			AddSource:   b.addSource,
			ReplaceAttr: b.replaceAttr,
		})
		if err != nil {
			return nil, err
		}
		return jh, nil
	}

	opts := &slog.HandlerOptions{
		Level:     b.levelVar,
		AddSource: b.addSource,
	}
	opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		// 扩展级别输出名称而非 "ERROR+4"
		if len(groups) == 0 && a.Key == slog.LevelKey {
			if lv, ok := a.Value.Any().(slog.Level); ok {
				a.Value = slog.StringValue(Level(lv).String())
			}
		}
		if b.replaceAttr != nil {
			return b.replaceAttr(groups, a)
		}
		return a
	}

	var h slog.Handler
	if b.format == FormatJSON {
		h = slog.NewJSONHandler(b.output, opts)
	} else {
		h = slog.NewTextHandler(b.output, opts)
	}
	if b.ident != "" {
		h = h.WithAttrs([]slog.Attr{slog.String("ident", b.ident)})
	}
	return h, nil
}

func (b *Builder) closeRotator() {
	if b.rotator != nil {
		_ = b.rotator.Close()
		b.rotator = nil
	}
}

func (b *Builder) cleanup() func() error {
	var once sync.Once
	rotator := b.rotator

	return func() error {
		var err error
		once.Do(func() {
			if rotator != nil {
				err = rotator.Close()
			}
		})
		return err
	}
}
