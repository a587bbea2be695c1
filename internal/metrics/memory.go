package metrics

import "runtime"

// MemorySnapshot holds a point-in-time reading of the process heap.
type MemorySnapshot struct {
	HeapAlloc uint64 // bytes in use by the loaded tables
	Sys       uint64 // total bytes obtained from the OS
	NumGC     uint32 // number of completed GC cycles
}

// readMemory reads the current runtime memory statistics. It is a variable
// so tests can pin the values.
var readMemory = func() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{HeapAlloc: m.HeapAlloc, Sys: m.Sys, NumGC: m.NumGC}
}
