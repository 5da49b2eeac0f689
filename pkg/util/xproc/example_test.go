package xproc_test

import (
	"fmt"

	"github.com/omeyang/xops/pkg/util/xproc"
)

func ExampleProcessID() {
	pid := xproc.ProcessID()
	fmt.Println(pid > 0)
	// Output:
	// true
}

func ExampleAlive() {
	ok, err := xproc.Alive(xproc.ProcessID())
	if err != nil {
		// 非 Unix 平台不支持
		ok = true
	}
	fmt.Println(ok)
	// Output:
	// true
}
