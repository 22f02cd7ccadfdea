package mmap

import (
	"os"
	"sync/atomic"
)

// Mapping is a read-write, file-backed memory mapping that can grow.
// It owns the underlying byte slice and is responsible for unmapping it.
//
// Mutations through Bytes are visible to the backing file and vice versa
// (shared semantics). The slice returned by Bytes is valid only until the
// next Grow or Close call.
type Mapping struct {
	data   []byte
	size   int
	closed atomic.Bool
}

// Map maps size bytes of f into memory with read-write, shared semantics.
func Map(f *os.File, size int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	data, err := osMap(f, size)
	if err != nil {
		return nil, err
	}

	return &Mapping{data: data, size: size}, nil
}

// Grow extends the mapping to newSize bytes. The caller must have already
// truncated f to at least newSize. The mapping may move in the address
// space; any slice previously obtained from Bytes is invalid afterward.
// Bytes between the old and the new size are zeroed.
//
// On failure the old mapping remains intact and usable.
func (m *Mapping) Grow(f *os.File, newSize int) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if newSize < m.size {
		return ErrInvalidSize
	}
	if newSize == m.size {
		return nil
	}

	data, err := osRemap(m.data, f, newSize)
	if err != nil {
		return err
	}

	clear(data[m.size:])

	m.data = data
	m.size = newSize

	return nil
}

// Sync flushes modified pages to the backing file and blocks until the
// data has reached storage.
func (m *Mapping) Sync() error {
	if m.closed.Load() {
		return ErrClosed
	}
	return osSync(m.data)
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	return osAdvise(m.data, pattern)
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.data != nil {
		return osUnmap(m.data)
	}
	return nil
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Grow or Close is called.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return m.size
}
