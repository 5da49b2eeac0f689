package xfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "绝对路径", input: "/var/run/lldpd.pid", want: "/var/run/lldpd.pid"},
		{name: "相对路径", input: "run/lldpd.pid", want: "run/lldpd.pid"},
		{name: "文件名包含双点", input: "app..2024.log", want: "app..2024.log"},
		{name: "绝对路径消解", input: "/var/log/../run/x.pid", want: "/var/run/x.pid"},
		{name: "冗余斜杠", input: "/var//run/./x.pid", want: "/var/run/x.pid"},
		{name: "空路径", input: "", wantErr: ErrEmptyPath},
		{name: "空字节", input: "a\x00b", wantErr: ErrNullByte},
		{name: "目录路径", input: "/var/run/", wantErr: ErrInvalidPath},
		{name: "反斜杠结尾", input: "logs\\", wantErr: ErrInvalidPath},
		{name: "相对穿越", input: "../etc/passwd", wantErr: ErrPathTraversal},
		{name: "当前目录", input: ".", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizePath(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestSafeJoin(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		path    string
		want    string
		wantErr error
	}{
		{name: "普通文件", base: "/var/run", path: "lldpd.pid", want: "/var/run/lldpd.pid"},
		{name: "子目录", base: "/run/sdump", path: "a/b.txt", want: "/run/sdump/a/b.txt"},
		{name: "点开头文件名", base: "/var/run", path: "..config", want: "/var/run/..config"},
		{name: "穿越", base: "/var/run", path: "../etc/passwd", wantErr: ErrPathTraversal},
		{name: "内部穿越", base: "/var/run", path: "a/../../x", wantErr: ErrPathTraversal},
		{name: "绝对路径", base: "/var/run", path: "/etc/passwd", wantErr: ErrInvalidPath},
		{name: "反斜杠根", base: "/var/run", path: "\\x", wantErr: ErrInvalidPath},
		{name: "相对 base", base: "var/run", path: "x", wantErr: ErrInvalidPath},
		{name: "空 base", base: "", path: "x", wantErr: ErrEmptyPath},
		{name: "空 path", base: "/var/run", path: "", wantErr: ErrEmptyPath},
		{name: "空字节", base: "/var/run", path: "x\x00", wantErr: ErrNullByte},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SafeJoin(tt.base, tt.path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "file.pid")

	require.NoError(t, EnsureDir(target))
	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// 已存在时不报错
	require.NoError(t, EnsureDir(target))
	// 无目录部分
	require.NoError(t, EnsureDir("file.pid"))

	require.ErrorIs(t, EnsureDir(""), ErrEmptyPath)
	require.ErrorIs(t, EnsureDir("a\x00"), ErrNullByte)
	require.ErrorIs(t, EnsureDirWithPerm(target, 0o640), ErrInvalidPerm)
}
