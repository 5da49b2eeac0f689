package xsort

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidArgument 是所有参数错误的根错误。
var ErrInvalidArgument = errors.New("xsort: invalid argument")

var (
	// ErrNilComparator 比较函数为 nil。
	ErrNilComparator = fmt.Errorf("%w: nil comparator", ErrInvalidArgument)

	// ErrEmptyCollection 待排序的 map 为空。
	ErrEmptyCollection = fmt.Errorf("%w: empty collection", ErrInvalidArgument)

	// ErrNilBuffer 输出缓冲区为 nil。
	ErrNilBuffer = fmt.Errorf("%w: nil buffer", ErrInvalidArgument)

	// ErrShortBuffer 输出缓冲区长度不足。
	ErrShortBuffer = fmt.Errorf("%w: short buffer", ErrInvalidArgument)
)

// Entry 是 map 中的一个键值对。
type Entry[V any] struct {
	Name  string
	Value V
}

// Compare 比较两个条目，a 在前返回负数，a 在后返回正数。
type Compare[V any] func(a, b Entry[V]) int

// ByName 按键名升序比较。
func ByName[V any](a, b Entry[V]) int {
	return cmp.Compare(a.Name, b.Name)
}

// Sort 将 m 展开为新切片并按 compare 排序。
func Sort[V any](m map[string]V, compare Compare[V]) ([]Entry[V], error) {
	if err := check(m, compare); err != nil {
		return nil, err
	}
	out := make([]Entry[V], len(m))
	fill(out, m)
	slices.SortFunc(out, compare)
	return out, nil
}

// SortInto 将 m 按 compare 排序后写入 dst 的前 len(m) 个位置，返回写入数量。
//
// 出错时 dst 内容不确定。
func SortInto[V any](dst []Entry[V], m map[string]V, compare Compare[V]) (int, error) {
	if err := check(m, compare); err != nil {
		return 0, err
	}
	if dst == nil {
		return 0, ErrNilBuffer
	}
	if len(dst) < len(m) {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrShortBuffer, len(m), len(dst))
	}
	out := dst[:len(m)]
	fill(out, m)
	slices.SortFunc(out, compare)
	return len(out), nil
}

func check[V any](m map[string]V, compare Compare[V]) error {
	if compare == nil {
		return ErrNilComparator
	}
	if len(m) == 0 {
		return ErrEmptyCollection
	}
	return nil
}

func fill[V any](out []Entry[V], m map[string]V) {
	i := 0
	for k, v := range m {
		out[i] = Entry[V]{Name: k, Value: v}
		i++
	}
}
