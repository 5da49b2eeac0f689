package xlog

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// ErrJournalUnavailable 表示 systemd-journald 套接字不可用。
var ErrJournalUnavailable = errors.New("xlog: journald is not available")

// journal 字段名
const (
	fieldIdentifier = "SYSLOG_IDENTIFIER"
	fieldCodeFile   = "CODE_FILE"
	fieldCodeLine   = "CODE_LINE"
	fieldCodeFunc   = "CODE_FUNC"
)

// sendFunc 与 journal.Send 签名一致，测试中替换。
type sendFunc func(msg string, pri journal.Priority, vars map[string]string) error

// journalEnabled 与 journal.Enabled 一致，测试中替换。
var journalEnabled = journal.Enabled

// JournalHandler 将记录直接发送到 systemd-journald 的 slog.Handler。
//
// 级别映射为 PRIORITY；属性转为大写 journal 字段，分组以 "_" 连接作为前缀
// （如 group "dump" 下的 "path" 变为 DUMP_PATH）。非法字符替换为 '_'，
// 去掉开头的 '_' 后为空的属性被丢弃。
type JournalHandler struct {
	send        sendFunc
	level       slog.Leveler
	ident       string
	addSource   bool
	replaceAttr ReplaceAttrFunc
	prefix      string
	groups      []string
	fields      map[string]string
}

// JournalOptions 配置 [NewJournalHandler]。
type JournalOptions struct {
	// Level 最低级别，nil 表示 info
	Level slog.Leveler
	// Ident 写入 SYSLOG_IDENTIFIER，空则由 journald 取进程名
	Ident       string
	AddSource   bool
	ReplaceAttr ReplaceAttrFunc
}

// NewJournalHandler 创建 JournalHandler。
//
// journald 不可用时返回 [ErrJournalUnavailable]。
func NewJournalHandler(opts JournalOptions) (*JournalHandler, error) {
	if !journalEnabled() {
		return nil, ErrJournalUnavailable
	}
	return newJournalHandler(journal.Send, opts), nil
}

func newJournalHandler(send sendFunc, opts JournalOptions) *JournalHandler {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return &JournalHandler{
		send:        send,
		level:       level,
		ident:       opts.Ident,
		addSource:   opts.AddSource,
		replaceAttr: opts.ReplaceAttr,
	}
}

// Enabled 实现 slog.Handler。
func (h *JournalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle 实现 slog.Handler。
func (h *JournalHandler) Handle(_ context.Context, r slog.Record) error {
	vars := make(map[string]string, len(h.fields)+r.NumAttrs()+4)
	for k, v := range h.fields {
		vars[k] = v
	}
	if h.ident != "" {
		vars[fieldIdentifier] = h.ident
	}
	if h.addSource && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := frames.Next()
		vars[fieldCodeFile] = f.File
		vars[fieldCodeLine] = strconv.Itoa(f.Line)
		vars[fieldCodeFunc] = f.Function
	}
	r.Attrs(func(a slog.Attr) bool {
		h.addAttr(vars, h.prefix, h.groups, a)
		return true
	})
	return h.send(r.Message, priorityOf(Level(r.Level)), vars)
}

// WithAttrs 实现 slog.Handler。
func (h *JournalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	c := h.clone()
	for _, a := range attrs {
		h.addAttr(c.fields, c.prefix, c.groups, a)
	}
	return c
}

// WithGroup 实现 slog.Handler。
func (h *JournalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.prefix = c.prefix + fieldName(name) + "_"
	c.groups = append(c.groups[:len(c.groups):len(c.groups)], name)
	return c
}

func (h *JournalHandler) clone() *JournalHandler {
	c := *h
	c.fields = make(map[string]string, len(h.fields))
	for k, v := range h.fields {
		c.fields[k] = v
	}
	return &c
}

func (h *JournalHandler) addAttr(dst map[string]string, prefix string, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if h.replaceAttr != nil && a.Value.Kind() != slog.KindGroup {
		a = h.replaceAttr(groups, a)
		a.Value = a.Value.Resolve()
	}
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		sub := a.Value.Group()
		if len(sub) == 0 {
			return
		}
		p, g := prefix, groups
		if a.Key != "" {
			p = prefix + fieldName(a.Key) + "_"
			g = append(groups[:len(groups):len(groups)], a.Key)
		}
		for _, ga := range sub {
			h.addAttr(dst, p, g, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	name := strings.TrimLeft(prefix+fieldName(a.Key), "_")
	if name == "" {
		return
	}
	dst[name] = a.Value.String()
}

// fieldName 转换为 journald 接受的字段名字符集 [A-Z0-9_]。
func fieldName(key string) string {
	b := make([]byte, len(key))
	for i := range len(key) {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z':
			b[i] = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b[i] = c
		default:
			b[i] = '_'
		}
	}
	return string(b)
}

// priorityOf 级别到 journald PRIORITY 的映射
func priorityOf(l Level) journal.Priority {
	return journal.Priority(l.Severity())
}
