//go:build !unix

package xproc

import "fmt"

// Alive 在非 Unix 平台返回 [ErrUnsupportedPlatform]。
func Alive(pid int) (bool, error) {
	if pid <= 0 {
		return false, fmt.Errorf("%w: %d", ErrInvalidPID, pid)
	}
	return false, ErrUnsupportedPlatform
}
