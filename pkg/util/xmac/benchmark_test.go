package xmac

import "testing"

func BenchmarkString(b *testing.B) {
	addr := MustParse("aa:bb:cc:dd:ee:ff")
	b.ReportAllocs()

	for b.Loop() {
		_ = addr.String()
	}
}

func BenchmarkFormatUint64(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		_, _ = FormatUint64(0x001a2b3c4d5e)
	}
}

func BenchmarkParse(b *testing.B) {
	inputs := []struct {
		name  string
		input string
	}{
		{"colon", "aa:bb:cc:dd:ee:ff"},
		{"dot", "aabb.ccdd.eeff"},
		{"bare", "aabbccddeeff"},
	}

	for _, tc := range inputs {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Parse(tc.input)
			}
		})
	}
}
