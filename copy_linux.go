package zcio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// copyRange asks the kernel to move size bytes between the two files in
// one copy_file_range(2) call. A short copy is reported, not retried.
func copyRange(src, dst *os.File, size int64) error {
	if size == 0 {
		return nil
	}

	n, err := unix.CopyFileRange(int(src.Fd()), nil, int(dst.Fd()), nil, int(size), 0)
	if err != nil {
		return err
	}
	if int64(n) != size {
		return fmt.Errorf("%w: %d of %d bytes", ErrShortCopy, n, size)
	}

	return nil
}
