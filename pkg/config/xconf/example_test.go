package xconf_test

import (
	"fmt"

	"github.com/omeyang/xops/pkg/config/xconf"
)

func ExampleNewFromBytes() {
	data := []byte(`
log:
  mask: "0x1c0"
  format: journal
run_dir: /run/ops
`)
	cfg, err := xconf.NewFromBytes(data, xconf.FormatYAML)
	if err != nil {
		fmt.Println(err)
		return
	}

	var c struct {
		Log struct {
			Mask   string `koanf:"mask"`
			Format string `koanf:"format"`
		} `koanf:"log"`
		RunDir string `koanf:"run_dir"`
	}
	if err := cfg.Unmarshal("", &c); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Log.Mask, c.Log.Format, c.RunDir)
	// Output: 0x1c0 journal /run/ops
}
