//go:build windows

package mmap

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

func osMap(f *os.File, size int) ([]byte, error) {
	// Passing the size extends the file when it is shorter than the
	// requested mapping (Windows cannot map past the end of a file the
	// way mmap(2) can).
	h, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, windows.PAGE_READWRITE,
		uint32(uint64(size)>>32), uint32(size), nil)
	if err != nil {
		return nil, err
	}
	// The view holds a reference; the mapping handle can be closed now.
	defer windows.CloseHandle(h)

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_WRITE, 0, 0, uintptr(size))
	if err != nil {
		return nil, err
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func osUnmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return windows.UnmapViewOfFile(uintptr(unsafe.Pointer(&data[0])))
}

// osRemap has no in-place growth on Windows: create the larger view
// first, then drop the old one. Both views are backed by the same file,
// so they stay coherent while they briefly coexist.
func osRemap(old []byte, f *os.File, newSize int) ([]byte, error) {
	data, err := osMap(f, newSize)
	if err != nil {
		return nil, err
	}

	if err := osUnmap(old); err != nil {
		_ = osUnmap(data)
		return nil, err
	}

	return data, nil
}

func osSync(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return windows.FlushViewOfFile(uintptr(unsafe.Pointer(&data[0])), uintptr(len(data)))
}

func osAdvise(data []byte, pattern AccessPattern) error {
	// Windows does not have a direct equivalent to madvise; the hint is
	// advisory, so this is a no-op.
	_ = data
	_ = pattern
	return nil
}
