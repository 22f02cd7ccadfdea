//go:build !linux

package zcio

import (
	"fmt"
	"io"
	"os"
)

// copyRange copies size bytes in a single pass where copy_file_range(2)
// is unavailable. A short copy is reported, not retried.
func copyRange(src, dst *os.File, size int64) error {
	if size == 0 {
		return nil
	}

	n, err := io.Copy(dst, io.NewSectionReader(src, 0, size))
	if err != nil {
		return err
	}
	if n != size {
		return fmt.Errorf("%w: %d of %d bytes", ErrShortCopy, n, size)
	}

	return nil
}
