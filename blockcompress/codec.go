// Package blockcompress provides optional whole-buffer compression for already-encoded
// blocks. It sits outside the block package's bit-exact layout entirely: a caller compresses
// a finished block buffer before handing it to storage, and decompresses it before handing
// the result to block.NewReader. The block header itself carries no compression tag.
package blockcompress

import (
	"fmt"

	"github.com/heliotime/blockcodec/errs"
)

// Algorithm identifies a whole-buffer compression scheme.
type Algorithm byte

const (
	// AlgorithmNone performs no compression.
	AlgorithmNone Algorithm = iota
	// AlgorithmS2 uses the S2 (Snappy-compatible, faster) algorithm.
	AlgorithmS2
	// AlgorithmLZ4 uses LZ4 block compression.
	AlgorithmLZ4
	// AlgorithmZstd uses Zstandard.
	AlgorithmZstd
)

// String returns a human-readable name for a, for use in log lines and error messages.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "none"
	case AlgorithmS2:
		return "s2"
	case AlgorithmLZ4:
		return "lz4"
	case AlgorithmZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", byte(a))
	}
}

// Compressor compresses a byte buffer.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte buffer previously produced by the matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the Codec implementing algo.
func CreateCodec(algo Algorithm) (Codec, error) {
	switch algo {
	case AlgorithmNone:
		return NewNoOpCompressor(), nil
	case AlgorithmS2:
		return NewS2Compressor(), nil
	case AlgorithmLZ4:
		return NewLZ4Compressor(), nil
	case AlgorithmZstd:
		return NewZstdCompressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, algo)
	}
}
