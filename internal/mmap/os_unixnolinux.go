//go:build unix && !linux

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// osRemap grows the mapping where mremap(2) is unavailable: map the file
// again at the new size, then drop the old mapping. MAP_SHARED keeps both
// views coherent while they briefly coexist. On failure the old mapping
// is untouched.
func osRemap(old []byte, f *os.File, newSize int) ([]byte, error) {
	data, err := osMap(f, newSize)
	if err != nil {
		return nil, err
	}

	if err := unix.Munmap(old); err != nil {
		_ = unix.Munmap(data)
		return nil, err
	}

	return data, nil
}
