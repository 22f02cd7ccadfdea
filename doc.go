// Package zcio provides zero-copy file I/O over a growable memory-mapped
// file.
//
// # Overview
//
// Instead of copying bytes between kernel and user buffers on every read
// or write, a MappedFile maps the file into the process address space and
// hands out windows — byte slices aliasing the mapping directly. A read
// window is consumed in place; a write window is filled in place and
// flushed to the file when the window is released. Writing past the end
// of the file grows the file and the mapping.
//
// # Usage
//
//	f, err := zcio.Open("data.bin")
//	if err != nil { ... }
//	defer f.Close()
//
//	// Zero-copy write: fill the window in place.
//	w, err := f.WriteStart(5)
//	if err != nil { ... }
//	copy(w, "hello")
//	if err := f.WriteEnd(); err != nil { ... }
//
//	// Zero-copy read: the window aliases the mapping.
//	f.Seek(0, io.SeekStart)
//	r := f.ReadStart(5)
//	process(r)
//	f.ReadEnd()
//
// # Windows and Lifetime
//
// A window is valid only between its start call and its matching end
// call. Growth during a write may move the mapping, so a retained window
// can point at unmapped memory. Never keep a window past ReadEnd or
// WriteEnd, and pair every start with exactly one end — including a
// WriteStart that returned an error.
//
// # Thread Safety
//
// A MappedFile is safe for concurrent use. Readers share access and
// proceed in parallel; a writer excludes readers and other writers. No
// fairness between waiting readers and writers is guaranteed; under
// sustained contention either side can starve.
//
// # Durability
//
// WriteEnd flushes the mapping to storage synchronously before releasing
// exclusive access, and Close flushes again before unmapping. There is no
// other durability guarantee.
package zcio
