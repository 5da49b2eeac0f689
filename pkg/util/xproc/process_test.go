package xproc

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessID(t *testing.T) {
	pid := ProcessID()
	assert.Greater(t, pid, 0)
	assert.Equal(t, os.Getpid(), pid)
}

func TestProcessName(t *testing.T) {
	ResetProcessName()
	defer ResetProcessName()

	name := ProcessName()
	assert.NotEmpty(t, name)
	assert.NotContains(t, name, string(os.PathSeparator))
}

// 注意：以下测试修改包级变量与 os.Args，不可使用 t.Parallel()。
func TestProcessNameFallback(t *testing.T) {
	origExe, origArgs := osExecutable, os.Args
	defer func() {
		osExecutable, os.Args = origExe, origArgs
		ResetProcessName()
	}()

	osExecutable = func() (string, error) { return "", errors.New("no exe") }

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"nil_args", nil, ""},
		{"empty_arg0", []string{""}, ""},
		{"absolute", []string{"/usr/sbin/lldpd"}, "lldpd"},
		{"relative", []string{"./bin/portd"}, "portd"},
		{"root", []string{"/"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetProcessName()
			os.Args = tt.args
			assert.Equal(t, tt.want, ProcessName())
		})
	}
}

func TestProcessNameCached(t *testing.T) {
	origExe := osExecutable
	defer func() {
		osExecutable = origExe
		ResetProcessName()
	}()

	calls := 0
	osExecutable = func() (string, error) {
		calls++
		return "/opt/bin/vland", nil
	}

	ResetProcessName()
	assert.Equal(t, "vland", ProcessName())
	assert.Equal(t, "vland", ProcessName())
	assert.Equal(t, 1, calls)
}
