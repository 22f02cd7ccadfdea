// Package mmap provides the growable read-write memory mapping that backs
// zero-copy file I/O.
//
// # Overview
//
// A Mapping keeps a file's bytes resident in the process address space
// with shared semantics: stores through Bytes() land in the file, and
// file changes show up in the mapping. Grow extends the mapping after the
// caller has truncated the file; the mapping may move, which is why
// callers must never hold a slice from Bytes() across a Grow.
//
// # Platform Support
//
//   - Linux: mmap(2), mremap(2) with MREMAP_MAYMOVE, msync(2), madvise(2)
//   - Other Unix (macOS, BSD): mmap(2); growth maps the file again at the
//     new size before dropping the old mapping
//   - Windows: CreateFileMapping/MapViewOfFile; FlushViewOfFile for Sync;
//     madvise is a no-op
//
// # Thread Safety
//
// A Mapping is not synchronized. The caller serializes Grow, Sync, and
// Close against all other access; zcio does this with its room primitive.
// Close is idempotent and guarded by an atomic flag.
package mmap
