package xmac

import "github.com/omeyang/xops/pkg/util/xoctet"

// MarshalText 实现 [encoding.TextMarshaler]，输出小写冒号格式。
func (a Addr) MarshalText() ([]byte, error) {
	return xoctet.AppendFormat(make([]byte, 0, StrLen), a.bytes[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 支持所有 [Parse] 支持的格式，空输入设置为零值。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*a = Addr{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
