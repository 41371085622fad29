// Package mmap maps local input files read-only into memory.
//
//	m, err := mmap.Open("genome.fa")
//	if err != nil { ... }
//	defer m.Close()
//	m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// Unix uses mmap(2) and madvise(2). Windows uses MapViewOfFile; Advise is a
// no-op there. The slice returned by Bytes must not be used after Close.
package mmap
