package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// osRemap grows the mapping in place with mremap(2). MREMAP_MAYMOVE lets
// the kernel relocate the mapping when it cannot be extended at its
// current address. On failure the old mapping is untouched.
func osRemap(old []byte, _ *os.File, newSize int) ([]byte, error) {
	return unix.Mremap(old, newSize, unix.MREMAP_MAYMOVE)
}
