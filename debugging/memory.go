package debugging

import (
	"fmt"
	"runtime"
)

func GetMemUsage() runtime.MemStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m
}

// GetFormattedMemUsage describes the current memory usage, including the
// number of live heap objects, which drops once released list arenas are collected.
func GetFormattedMemUsage() string {
	m := GetMemUsage()
	return fmt.Sprintf(`Memory Allocation
	Total Reserved: %d MiB
	Heap In-Use: %d MiB
	Heap Allocated: %d MiB
	Heap Objects: %d
	Stack In-Use: %d MiB`, bToMb(m.Sys), bToMb(m.HeapInuse), bToMb(m.HeapAlloc), m.HeapObjects, bToMb(m.StackInuse))
}

func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}
