package zcio

import "errors"

var (
	// ErrClosed is returned when an operation is attempted on a closed file.
	ErrClosed = errors.New("zcio: file is closed")
	// ErrNegativeOffset is returned when a seek would land before the start
	// of the file. The cursor is left unchanged.
	ErrNegativeOffset = errors.New("zcio: seek before start of file")
	// ErrInvalidWhence is returned when Seek is called with a whence other
	// than io.SeekStart, io.SeekCurrent, or io.SeekEnd.
	ErrInvalidWhence = errors.New("zcio: invalid whence")
	// ErrInvalidSize is returned when a negative window size is requested.
	ErrInvalidSize = errors.New("zcio: invalid window size")
	// ErrShortCopy is returned when the kernel copied fewer bytes than the
	// source holds. There is no partial-copy recovery.
	ErrShortCopy = errors.New("zcio: short copy")
)
