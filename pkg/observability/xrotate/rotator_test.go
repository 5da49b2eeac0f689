package xrotate

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xops/pkg/util/xfile"
)

func TestNew_Validation(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "opsd.log")

	tests := []struct {
		name     string
		filename string
		opts     []Option
		wantErr  error
	}{
		{name: "空文件名", filename: "", wantErr: ErrEmptyFilename},
		{name: "大小为 0", filename: file, opts: []Option{WithMaxSize(0)}, wantErr: ErrInvalidMaxSize},
		{name: "大小超限", filename: file, opts: []Option{WithMaxSize(maxSizeMB + 1)}, wantErr: ErrInvalidMaxSize},
		{name: "备份为负", filename: file, opts: []Option{WithMaxBackups(-1)}, wantErr: ErrInvalidMaxBackups},
		{name: "天数超限", filename: file, opts: []Option{WithMaxAge(maxAgeDays + 1)}, wantErr: ErrInvalidMaxAge},
		{name: "无清理策略", filename: file, opts: []Option{WithMaxBackups(0), WithMaxAge(0)}, wantErr: ErrNoCleanupPolicy},
		{name: "穿越路径", filename: "../x.log", wantErr: xfile.ErrPathTraversal},
		{name: "目录路径", filename: dir + "/", wantErr: xfile.ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.filename, tt.opts...)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, r)
		})
	}
}

func TestRotator_WriteCreatesDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a", "b", "opsd.log")

	r, err := New(file, nil, WithCompress(false), WithLocalTime(true))
	require.NoError(t, err)
	assert.Equal(t, file, r.Filename())

	n, err := r.Write([]byte("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	require.NoError(t, r.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestRotator_Rotate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "opsd.log")

	r, err := New(file, WithCompress(false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	_, err = r.Write([]byte("before\n"))
	require.NoError(t, err)
	require.NoError(t, r.Rotate())
	_, err = r.Write([]byte("after\n"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if e.Name() != "opsd.log" && strings.HasPrefix(e.Name(), "opsd-") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "after\n", string(data))
}

func TestRotator_Closed(t *testing.T) {
	r, err := New(filepath.Join(t.TempDir(), "opsd.log"))
	require.NoError(t, err)

	require.NoError(t, r.Close())
	assert.ErrorIs(t, r.Close(), ErrClosed)

	_, err = r.Write([]byte("x"))
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, r.Rotate(), ErrClosed)
}

func TestRotator_ConcurrentWrite(t *testing.T) {
	file := filepath.Join(t.TempDir(), "opsd.log")
	r, err := New(file, WithCompress(false))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				_, _ = r.Write([]byte("line\n"))
			}
		}()
	}
	wg.Wait()
	require.NoError(t, r.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, 8*50, strings.Count(string(data), "line\n"))
}

func BenchmarkRotator_Write(b *testing.B) {
	r, err := New(filepath.Join(b.TempDir(), "bench.log"), WithCompress(false))
	require.NoError(b, err)
	b.Cleanup(func() { _ = r.Close() })

	line := []byte("2026-01-01T00:00:00Z level=INFO msg=bench\n")
	for b.Loop() {
		_, _ = r.Write(line)
	}
}
