package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 配置文件格式。
type Format string

// 支持的格式
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat 解析格式名（大小写不敏感），"yml" 视为 yaml。
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Option 配置加载选项。
type Option func(*options)

type options struct {
	delim string
	tag   string
}

// WithDelim 键路径分隔符，默认 "."。
func WithDelim(delim string) Option {
	return func(o *options) {
		if delim != "" {
			o.delim = delim
		}
	}
}

// WithTag Unmarshal 使用的结构体标签，默认 "koanf"。
func WithTag(tag string) Option {
	return func(o *options) {
		if tag != "" {
			o.tag = tag
		}
	}
}

// Config 已加载的配置，可并发读取与重载。
type Config struct {
	mu     sync.RWMutex
	k      *koanf.Koanf
	path   string
	format Format
	opts   options
}

// New 读取并解析配置文件。空文件得到空配置。
func New(path string, opts ...Option) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, err
	}

	c := newConfig(format, opts)
	c.path = path
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromBytes 从内存数据创建配置，不能 Reload 或 Watch。
func NewFromBytes(data []byte, format Format, opts ...Option) (*Config, error) {
	f, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}
	c := newConfig(f, opts)
	k, err := c.parse(data)
	if err != nil {
		return nil, err
	}
	c.k = k
	return c, nil
}

func newConfig(format Format, opts []Option) *Config {
	o := options{delim: ".", tag: "koanf"}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Config{format: format, opts: o}
}

// Reload 重新读取配置文件；失败时保留当前配置。
func (c *Config) Reload() error {
	if c.path == "" {
		return ErrNotReloadable
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	k, err := c.parse(data)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.k = k
	c.mu.Unlock()
	return nil
}

func (c *Config) parse(data []byte) (*koanf.Koanf, error) {
	k := koanf.New(c.opts.delim)
	if len(data) == 0 {
		return k, nil
	}

	var parser koanf.Parser
	if c.format == FormatJSON {
		parser = json.Parser()
	} else {
		parser = yaml.Parser()
	}
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return k, nil
}

// Unmarshal 将 path 下的配置反序列化到 target，path 为空表示整个配置。
func (c *Config) Unmarshal(path string, target any) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.k.UnmarshalWithConf(path, target, koanf.UnmarshalConf{Tag: c.opts.tag}); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

// String 返回键的字符串值，不存在时为空。
func (c *Config) String(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.k.String(key)
}

// Exists 键是否存在。
func (c *Config) Exists(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.k.Exists(key)
}

// Koanf 返回当前 koanf 实例。Reload 会替换实例，不要长期持有。
func (c *Config) Koanf() *koanf.Koanf {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.k
}

// Path 配置文件路径，从字节创建时为空。
func (c *Config) Path() string { return c.path }

// Format 配置格式。
func (c *Config) Format() Format { return c.format }
