package xroot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestDirs_Paths(t *testing.T) {
	tests := []struct {
		name        string
		dirs        Dirs
		rel         string
		wantInstall string
		wantData    string
	}{
		{"空根目录原样返回", Dirs{}, "/etc/opsd.yaml", "/etc/opsd.yaml", "/etc/opsd.yaml"},
		{"前缀", Dirs{Install: "/opt/ops", Data: "/tmp/data"}, "/etc/opsd.yaml", "/opt/ops/etc/opsd.yaml", "/tmp/data/etc/opsd.yaml"},
		{"相对路径", Dirs{Install: "/opt/ops"}, "share/x", "/opt/ops/share/x", "share/x"},
		{"根目录尾斜杠", Dirs{Data: "/srv/"}, "/var/lib/x", "/var/lib/x", "/srv/var/lib/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantInstall, tt.dirs.InstallPath(tt.rel))
			assert.Equal(t, tt.wantData, tt.dirs.DataPath(tt.rel))
		})
	}
}

func TestDirs_Merge(t *testing.T) {
	base := Dirs{Install: "/opt/a", Data: "/data/a"}
	assert.Equal(t, base, base.Merge(Dirs{}))
	assert.Equal(t, Dirs{Install: "/opt/a", Data: "/data/b"}, base.Merge(Dirs{Data: "/data/b"}))
}

func TestFlags(t *testing.T) {
	var got Dirs
	cmd := &cli.Command{
		Name:  "opsd",
		Flags: Flags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			got = FromCommand(cmd)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(),
		[]string{"opsd", "--install_path", "/opt/ops", "--data_path=/srv/ops"}))
	assert.Equal(t, Dirs{Install: "/opt/ops", Data: "/srv/ops"}, got)
}

func TestFlags_Env(t *testing.T) {
	t.Setenv(EnvInstallPath, "/env/install")

	var got Dirs
	cmd := &cli.Command{
		Name:  "opsd",
		Flags: Flags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			got = FromCommand(cmd)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), []string{"opsd"}))
	assert.Equal(t, "/env/install", got.Install)
	assert.Empty(t, got.Data)
}

func TestContext(t *testing.T) {
	assert.Equal(t, Dirs{}, FromContext(context.Background()))

	d := Dirs{Install: "/opt"}
	assert.Equal(t, d, FromContext(WithContext(context.Background(), d)))
}

func TestUsage(t *testing.T) {
	assert.Contains(t, Usage, "-install_path=PATH")
	assert.Contains(t, Usage, "-data_path=PATH")
}
