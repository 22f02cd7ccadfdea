package zcio

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hupe1980/zcio/internal/mmap"
	"github.com/hupe1980/zcio/internal/room"
)

// MappedFile is an open file exposed through a single read-write memory
// mapping. Reads and writes hand out windows that alias the mapping
// directly, so no bytes are copied between kernel and user buffers.
//
// A MappedFile is safe for concurrent use by multiple goroutines. Readers
// proceed concurrently; a writer excludes readers and other writers. A
// window returned by ReadStart or WriteStart is valid only until the
// matching ReadEnd or WriteEnd.
type MappedFile struct {
	f    *os.File
	m    *mmap.Mapping
	room *room.Room

	// size is the logical file size. The mapping can be one byte longer:
	// an empty file is mapped at length one because zero-length mappings
	// are invalid, and that floor byte is never exposed as content.
	size   int64
	offset int64

	// cmu serializes cursor updates between concurrent readers. Writers
	// hold the room exclusively and do not need it.
	cmu sync.Mutex

	logger *Logger
	closed bool
}

// Open opens the file at path for zero-copy I/O, creating it if absent.
//
// On failure nothing is retained: the file descriptor and any partial
// mapping are released before the error is returned.
func Open(path string, optFns ...Option) (*MappedFile, error) {
	opts := options{
		mode:   0o666,
		logger: NoopLogger(),
		advise: AccessDefault,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, opts.mode) //nolint:gosec // G304: Path is caller-provided
	if err != nil {
		return nil, fmt.Errorf("zcio: failed to open %s: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("zcio: failed to stat %s: %w", path, err)
	}

	size := fi.Size()

	// Zero-length mappings are invalid, so an empty file is mapped at
	// length one. The logical size stays 0; reads clamp against it.
	mapLen := size
	if mapLen == 0 {
		mapLen = 1
	}

	m, err := mmap.Map(f, int(mapLen))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("zcio: failed to map %s: %w", path, err)
	}

	if opts.advise != AccessDefault {
		if err := m.Advise(opts.advise); err != nil {
			_ = m.Close()
			_ = f.Close()
			return nil, fmt.Errorf("zcio: failed to advise %s: %w", path, err)
		}
	}

	return &MappedFile{
		f:      f,
		m:      m,
		room:   room.New(),
		size:   size,
		logger: opts.logger.WithPath(path),
	}, nil
}

// ReadStart acquires shared read access and returns a window of at most
// maxSize bytes aliasing the mapping at the current cursor, advancing the
// cursor by the window's length. At or past end-of-file the window is
// empty; that is not an error.
//
// Every ReadStart must be paired with exactly one ReadEnd, and the window
// must not be used after ReadEnd returns.
func (f *MappedFile) ReadStart(maxSize int) []byte {
	f.room.RLock()

	f.cmu.Lock()
	defer f.cmu.Unlock()

	if f.closed || maxSize <= 0 || f.offset >= f.size {
		return nil
	}

	n := int64(maxSize)
	if remaining := f.size - f.offset; n > remaining {
		n = remaining
	}

	end := f.offset + n
	view := f.m.Bytes()[f.offset:end:end]
	f.offset = end

	return view
}

// ReadEnd releases the shared read access acquired by ReadStart.
func (f *MappedFile) ReadEnd() {
	f.room.RUnlock()
}

// WriteStart acquires exclusive write access and returns a writable
// window of size bytes aliasing the mapping at the current cursor,
// advancing the cursor by size. When the window would extend past the end
// of the file, the file and the mapping grow first; bytes between the old
// end and the cursor come up zero.
//
// Every WriteStart must be paired with exactly one WriteEnd, even when
// WriteStart returns an error — exclusive access is held until WriteEnd
// releases it.
func (f *MappedFile) WriteStart(size int) ([]byte, error) {
	f.room.Lock()

	if f.closed {
		return nil, ErrClosed
	}
	if size < 0 {
		return nil, ErrInvalidSize
	}

	end := f.offset + int64(size)
	if end > f.size {
		if err := f.grow(end); err != nil {
			return nil, err
		}
	}

	view := f.m.Bytes()[f.offset:end:end]
	f.offset = end

	return view, nil
}

// grow extends the backing file and the mapping to newSize. Called with
// the room held exclusively, so no window can be mid-access while the
// mapping moves.
func (f *MappedFile) grow(newSize int64) error {
	if err := f.f.Truncate(newSize); err != nil {
		return fmt.Errorf("zcio: failed to grow file to %d bytes: %w", newSize, err)
	}

	if err := f.m.Grow(f.f, int(newSize)); err != nil {
		return fmt.Errorf("zcio: failed to remap at %d bytes: %w", newSize, err)
	}

	f.size = newSize

	return nil
}

// WriteEnd flushes the mapping to the backing file and releases the
// exclusive access acquired by WriteStart. The flush is synchronous: the
// written bytes have reached storage when WriteEnd returns.
//
// A flush failure is logged and returned, but the release still happens —
// a failed flush never deadlocks the handle.
func (f *MappedFile) WriteEnd() error {
	var err error

	if !f.closed {
		if syncErr := f.m.Sync(); syncErr != nil {
			f.logger.Warn("flush after write failed", "error", syncErr)
			err = fmt.Errorf("zcio: failed to flush mapping: %w", syncErr)
		}
	}

	f.room.Unlock()

	return err
}

// Seek moves the cursor, serializing with writers and with the reader
// group as a whole. whence is io.SeekStart, io.SeekCurrent, or
// io.SeekEnd. Seeking past end-of-file is allowed and does not grow the
// file; the gap is zero-filled by the next write that lands beyond it.
//
// A seek that would land before the start of the file fails with
// ErrNegativeOffset and leaves the cursor unchanged.
func (f *MappedFile) Seek(offset int64, whence int) (int64, error) {
	f.room.Lock()
	defer f.room.Unlock()

	if f.closed {
		return 0, ErrClosed
	}

	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = f.offset + offset
	case io.SeekEnd:
		target = f.size + offset
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidWhence, whence)
	}

	if target < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeOffset, target)
	}

	f.offset = target

	return target, nil
}

// Size returns the logical file size. It must not be called while the
// caller holds an open window.
func (f *MappedFile) Size() int64 {
	f.room.Lock()
	defer f.room.Unlock()

	return f.size
}

// Offset returns the current cursor position. It must not be called while
// the caller holds an open window.
func (f *MappedFile) Offset() int64 {
	f.room.Lock()
	defer f.room.Unlock()

	return f.offset
}

// Advise hints the kernel about the expected access pattern for the
// mapping. On Windows this is a no-op. It must not be called while the
// caller holds an open window.
func (f *MappedFile) Advise(pattern AccessPattern) error {
	f.room.Lock()
	defer f.room.Unlock()

	if f.closed {
		return ErrClosed
	}

	return f.m.Advise(pattern)
}

// Close flushes the mapping to storage, unmaps it, and closes the backing
// file. All three steps are attempted; the first error wins. The handle
// is unusable afterward even when Close returns an error.
func (f *MappedFile) Close() error {
	f.room.Lock()
	defer f.room.Unlock()

	if f.closed {
		return ErrClosed
	}
	f.closed = true

	var firstErr error

	if err := f.m.Sync(); err != nil {
		f.logger.Warn("flush on close failed", "error", err)
		firstErr = fmt.Errorf("zcio: failed to flush mapping: %w", err)
	}
	if err := f.m.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("zcio: failed to unmap: %w", err)
	}
	if err := f.f.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("zcio: failed to close file: %w", err)
	}

	return firstErr
}
