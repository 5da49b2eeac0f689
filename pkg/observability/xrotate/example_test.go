package xrotate_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/omeyang/xops/pkg/observability/xrotate"
)

func ExampleNew() {
	dir, _ := os.MkdirTemp("", "xrotate")
	defer os.RemoveAll(dir)

	r, err := xrotate.New(filepath.Join(dir, "opsd.log"), xrotate.WithMaxSize(1), xrotate.WithCompress(false))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer r.Close()

	n, err := fmt.Fprintln(r, "daemon started")
	fmt.Println(n, err)
	// Output: 15 <nil>
}
