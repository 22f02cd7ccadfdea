package zcio

import (
	"io/fs"

	"github.com/hupe1980/zcio/internal/mmap"
)

// AccessPattern provides hints to the kernel about how the mapped file
// will be accessed.
type AccessPattern = mmap.AccessPattern

const (
	// AccessDefault is the default access pattern (no specific advice).
	AccessDefault = mmap.AccessDefault
	// AccessSequential expects data to be accessed sequentially.
	AccessSequential = mmap.AccessSequential
	// AccessRandom expects data to be accessed randomly.
	AccessRandom = mmap.AccessRandom
	// AccessWillNeed expects data to be accessed in the near future.
	AccessWillNeed = mmap.AccessWillNeed
	// AccessDontNeed expects data to not be accessed in the near future.
	AccessDontNeed = mmap.AccessDontNeed
)

type options struct {
	mode   fs.FileMode
	logger *Logger
	advise AccessPattern
}

// Option configures Open behavior.
type Option func(*options)

// WithFileMode sets the permission bits used when Open has to create the
// file. The default is 0o666, subject to the process umask.
func WithFileMode(mode fs.FileMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithLogger configures structured logging for the handle.
//
// If nil is passed, logging stays disabled (the default).
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithAdvise issues a kernel access-pattern hint right after the file is
// mapped. On Windows the hint is a no-op.
func WithAdvise(pattern AccessPattern) Option {
	return func(o *options) {
		o.advise = pattern
	}
}
