package xfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SanitizePath 规范化文件路径。
//
// 接受绝对路径与相对路径；拒绝空路径、空字节、以分隔符结尾的目录路径，
// 以及规范化后仍含 ".." 段的相对路径。绝对路径中的 ".." 由 filepath.Clean 正常消解。
// 不限制目标目录，需要约束在某目录内时使用 [SafeJoin]。
func SanitizePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename is required: %w", ErrEmptyPath)
	}
	if containsNullByte(filename) {
		return "", fmt.Errorf("filename contains null byte: %w", ErrNullByte)
	}
	// Clean 会去掉尾部分隔符，必须在此之前判断
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, "\\") {
		return "", fmt.Errorf("path is a directory: %w", ErrInvalidPath)
	}

	cleaned := filepath.Clean(filename)
	if hasDotDotSegment(cleaned) {
		return "", fmt.Errorf("path traversal in filename: %w", ErrPathTraversal)
	}
	if base := filepath.Base(cleaned); base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("no file name specified: %w", ErrInvalidPath)
	}
	return cleaned, nil
}

// SafeJoin 将相对路径 path 拼接到绝对目录 base，保证结果位于 base 内。
//
//	SafeJoin("/var/run", "lldpd.pid")     // "/var/run/lldpd.pid"
//	SafeJoin("/var/run", "../etc/passwd") // ErrPathTraversal
//	SafeJoin("/var/run", "/etc/passwd")   // ErrInvalidPath
func SafeJoin(base, path string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("base directory is required: %w", ErrEmptyPath)
	}
	if path == "" {
		return "", fmt.Errorf("path is required: %w", ErrEmptyPath)
	}
	if containsNullByte(base) || containsNullByte(path) {
		return "", ErrNullByte
	}

	cleanBase := filepath.Clean(base)
	if !filepath.IsAbs(cleanBase) {
		return "", fmt.Errorf("base must be an absolute path: %w", ErrInvalidPath)
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "\\") {
		return "", fmt.Errorf("path must be relative: %w", ErrInvalidPath)
	}

	cleanPath := filepath.Clean(path)
	if hasDotDotSegment(cleanPath) {
		return "", fmt.Errorf("path traversal in path: %w", ErrPathTraversal)
	}

	joined := filepath.Join(cleanBase, cleanPath)
	rel, err := filepath.Rel(cleanBase, joined)
	if err != nil || hasDotDotSegment(rel) {
		return "", ErrPathEscaped
	}
	return joined, nil
}

func containsNullByte(path string) bool {
	return strings.ContainsRune(path, 0)
}

// hasDotDotSegment 逐字符扫描，'/' 与 '\' 均视为分隔符，零分配。
func hasDotDotSegment(path string) bool {
	i := 0
	for i < len(path) {
		if path[i] == '/' || path[i] == '\\' {
			i++
			continue
		}
		j := i
		for j < len(path) && path[j] != '/' && path[j] != '\\' {
			j++
		}
		if j-i == 2 && path[i] == '.' && path[i+1] == '.' {
			return true
		}
		i = j
	}
	return false
}
