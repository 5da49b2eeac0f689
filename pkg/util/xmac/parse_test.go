package xmac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	want := AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff})

	tests := []struct {
		name    string
		input   string
		want    Addr
		wantErr error
	}{
		{"colon", "aa:bb:cc:dd:ee:ff", want, nil},
		{"colon_upper", "AA:BB:CC:DD:EE:FF", want, nil},
		{"dash", "aa-bb-cc-dd-ee-ff", want, nil},
		{"dot", "aabb.ccdd.eeff", want, nil},
		{"bare", "aabbccddeeff", want, nil},
		{"whitespace", "  aa:bb:cc:dd:ee:ff\n", want, nil},
		{"all_zero", "00:00:00:00:00:00", Addr{}, nil},
		{"empty", "", Addr{}, ErrEmpty},
		{"mixed_separators", "aa:bb-cc:dd:ee:ff", Addr{}, ErrInvalidFormat},
		{"bad_hex_colon", "aa:bb:cc:dd:ee:gg", Addr{}, ErrInvalidFormat},
		{"bad_hex_bare", "aabbccddeegg", Addr{}, ErrInvalidFormat},
		{"bad_hex_dot", "aabb.ccdd.eegg", Addr{}, ErrInvalidFormat},
		{"garbage", "not a mac", Addr{}, ErrInvalidFormat},
		{"eui64", "aa:bb:cc:dd:ee:ff:00:11", Addr{}, ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { MustParse("00:1a:2b:3c:4d:5e") })
	assert.Panics(t, func() { MustParse("bogus") })
}

func TestParseBytes(t *testing.T) {
	a, err := ParseBytes([]byte{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, "00:01:02:03:04:05", a.String())

	_, err = ParseBytes([]byte{0, 1, 2})
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestTextRoundTrip(t *testing.T) {
	a := MustParse("00:1a:2b:3c:4d:5e")
	text, err := a.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "00:1a:2b:3c:4d:5e", string(text))

	var b Addr
	require.NoError(t, b.UnmarshalText(text))
	assert.Equal(t, a, b)

	require.NoError(t, b.UnmarshalText(nil))
	assert.True(t, b.IsZero())

	var nilAddr *Addr
	require.ErrorIs(t, nilAddr.UnmarshalText(text), ErrNilReceiver)
	require.ErrorIs(t, b.UnmarshalText([]byte("zz")), ErrInvalidFormat)
}
