package main

import "unsafe"

func memset(dst uintptr, c int, n uint) {
	for i := uint(0); i < n; i++ {
		*(*byte)(unsafe.Pointer(dst + uintptr(i))) = byte(c)
	}
}

// boundedName truncates a thread name to threadNameMax bytes, the same
// bounded-copy shape as memset above: no allocation, no growth past a
// fixed limit.
func boundedName(name string) string {
	if len(name) > threadNameMax {
		return name[:threadNameMax]
	}
	return name
}