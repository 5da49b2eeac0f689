package xproc

import "sync"

// ResetProcessName 清空进程名称缓存，使下一次 ProcessName 重新解析。
func ResetProcessName() {
	processNameOnce = sync.Once{}
	processNameValue = ""
}
