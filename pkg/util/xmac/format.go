package xmac

import "github.com/omeyang/xops/pkg/util/xoctet"

// StrLen 默认格式（xx:xx:xx:xx:xx:xx）的字符数。
const StrLen = 3*Len - 1

// Format 定义 MAC 地址的格式化风格。
type Format uint8

const (
	// FormatColon 使用冒号分隔，小写：aa:bb:cc:dd:ee:ff
	FormatColon Format = iota
	// FormatDash 使用短线分隔，小写：aa-bb-cc-dd-ee-ff
	FormatDash
	// FormatDot 使用点分隔（Cisco 风格），小写：aabb.ccdd.eeff
	FormatDot
	// FormatBare 无分隔符，小写：aabbccddeeff
	FormatBare
	// FormatColonUpper 使用冒号分隔，大写：AA:BB:CC:DD:EE:FF
	FormatColonUpper
)

// String 返回小写冒号格式，每个八位组固定两位。
func (a Addr) String() string {
	return xoctet.Format(a.bytes[:])
}

// FormatString 按指定格式返回地址字符串，未知格式按 [FormatColon] 处理。
func (a Addr) FormatString(f Format) string {
	switch f {
	case FormatDash:
		return xoctet.FormatSep(a.bytes[:], '-')
	case FormatDot:
		return formatDot(a.bytes)
	case FormatBare:
		return formatBare(a.bytes)
	case FormatColonUpper:
		return xoctet.FormatUpper(a.bytes[:])
	default:
		return a.String()
	}
}

// FormatUint64 将 48 位整数格式化为 MAC 地址字符串。
// v 超出 48 位时返回 [ErrOutOfRange]。
func FormatUint64(v uint64) (string, error) {
	a, err := FromUint64(v)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}

// formatDot 格式化为 xxxx.xxxx.xxxx。
func formatDot(b [Len]byte) string {
	const hex = "0123456789abcdef"
	var buf [14]byte
	j := 0
	for i, c := range b {
		if i == 2 || i == 4 {
			buf[j] = '.'
			j++
		}
		buf[j], buf[j+1] = hex[c>>4], hex[c&0x0f]
		j += 2
	}
	return string(buf[:])
}

// formatBare 格式化为 xxxxxxxxxxxx。
func formatBare(b [Len]byte) string {
	const hex = "0123456789abcdef"
	var buf [2 * Len]byte
	for i, c := range b {
		buf[2*i], buf[2*i+1] = hex[c>>4], hex[c&0x0f]
	}
	return string(buf[:])
}
