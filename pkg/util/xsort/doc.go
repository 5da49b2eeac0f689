// Package xsort 按调用方提供的比较函数对 map 的键值对排序。
//
// map 没有顺序，输出前需要先展开为 [Entry] 切片再排序：
//
//	entries, err := xsort.Sort(counters, xsort.ByName[int])
//
// 需要复用缓冲区时使用 [SortInto]，dst 长度至少为 len(m)。
//
// 排序不稳定：比较结果为 0 的两个条目顺序不确定。源 map 不会被修改。
package xsort
