//go:build unix

package xproc

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestAliveSelf(t *testing.T) {
	ok, err := Alive(ProcessID())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAliveInvalidPID(t *testing.T) {
	for _, pid := range []int{0, -1} {
		_, err := Alive(pid)
		require.ErrorIs(t, err, ErrInvalidPID)
	}
}

// 注意：替换包级变量 kill，不可使用 t.Parallel()。
func TestAliveErrno(t *testing.T) {
	orig := kill
	defer func() { kill = orig }()

	tests := []struct {
		name    string
		errno   error
		want    bool
		wantErr bool
	}{
		{"no_such_process", unix.ESRCH, false, false},
		{"permission_denied", unix.EPERM, true, false},
		{"other", unix.EINVAL, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kill = func(int, syscall.Signal) error { return tt.errno }
			got, err := Alive(4242)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
