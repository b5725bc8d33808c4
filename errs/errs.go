// Package errs defines the sentinel errors shared across the block codec packages.
//
// Callers should compare against these with errors.Is rather than matching on error
// strings, since the wrapping call site may add context via fmt.Errorf("%w: ...", ...).
package errs

import "errors"

var (
	// ErrBufferTooSmall is returned by a writer constructor when the destination buffer
	// cannot even hold the fixed header.
	ErrBufferTooSmall = errors.New("blockcodec: buffer too small for header")

	// ErrBufferOverflow is returned when a write could not be completed because the
	// destination buffer ran out of space.
	ErrBufferOverflow = errors.New("blockcodec: buffer overflow")

	// ErrBadData is returned during decode when a length prefix, count, or version field
	// does not match the bytes actually available.
	ErrBadData = errors.New("blockcodec: malformed data")

	// ErrVersionMismatch is returned when a decoded block's version tag does not match the
	// version this module writes.
	ErrVersionMismatch = errors.New("blockcodec: version mismatch")

	// ErrBadArgument is returned when caller-supplied arguments are inconsistent, such as
	// parallel input slices of unequal length.
	ErrBadArgument = errors.New("blockcodec: bad argument")

	// ErrScratchNotEmpty indicates a logic error: the per-chunk scratch buffer held samples
	// at a point where the contract guarantees it must be empty.
	ErrScratchNotEmpty = errors.New("blockcodec: scratch buffer not empty at fallback transition")

	// ErrUnsupportedCompression is returned by blockcompress when an unknown algorithm tag
	// is requested or decoded.
	ErrUnsupportedCompression = errors.New("blockcodec: unsupported compression algorithm")
)
