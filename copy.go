package zcio

import (
	"fmt"
	"os"
)

// CopyFile copies the whole of source into dest in a single kernel-level
// pass, creating dest if absent and truncating it to source's size first.
// Any previous content of dest is replaced. There is no chunking and no
// partial-copy recovery; a failed or short copy is surfaced as an error.
func CopyFile(source, dest string) error {
	src, err := os.OpenFile(source, os.O_CREATE|os.O_RDWR, 0o666) //nolint:gosec // G304: Path is caller-provided
	if err != nil {
		return fmt.Errorf("zcio: failed to open source %s: %w", source, err)
	}
	defer src.Close()

	fi, err := src.Stat()
	if err != nil {
		return fmt.Errorf("zcio: failed to stat source %s: %w", source, err)
	}

	dst, err := os.OpenFile(dest, os.O_CREATE|os.O_RDWR, 0o666) //nolint:gosec // G304: Path is caller-provided
	if err != nil {
		return fmt.Errorf("zcio: failed to open dest %s: %w", dest, err)
	}

	if err := dst.Truncate(fi.Size()); err != nil {
		_ = dst.Close()
		return fmt.Errorf("zcio: failed to truncate dest %s: %w", dest, err)
	}

	if err := copyRange(src, dst, fi.Size()); err != nil {
		_ = dst.Close()
		return fmt.Errorf("zcio: failed to copy %s to %s: %w", source, dest, err)
	}

	if err := dst.Close(); err != nil {
		return fmt.Errorf("zcio: failed to close dest %s: %w", dest, err)
	}

	return nil
}
