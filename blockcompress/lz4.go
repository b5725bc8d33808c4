package blockcompress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; they hold internal state that benefits
// from reuse across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses whole block buffers with LZ4 block compression.
type LZ4Compressor struct{}

var _ Codec = LZ4Compressor{}

// NewLZ4Compressor creates an LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data using a pooled lz4.Compressor into a pooled scratch buffer.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dstPtr := scratchFilled(lz4.CompressBlockBound(len(data)))
	defer putScratch(dstPtr)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, *dstPtr)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, (*dstPtr)[:n])

	return out, nil
}

// Decompress decompresses LZ4 block data into a pooled scratch buffer. When the buffer is too
// small it doubles the size (up to a 128MB safety limit) and retries; each retry allocates a
// new, larger buffer into the same pooled slot, so the grown buffer goes back to the pool.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	const maxSize = 128 * 1024 * 1024
	bufSize := len(data) * 4
	if bufSize < scratchHint {
		bufSize = scratchHint
	}

	dstPtr := scratchFilled(bufSize)
	defer putScratch(dstPtr)

	for {
		n, err := lz4.UncompressBlock(data, *dstPtr)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				if bufSize > maxSize {
					bufSize = maxSize
				}
				*dstPtr = make([]byte, bufSize)

				continue
			}

			return nil, err
		}
		out := make([]byte, n)
		copy(out, (*dstPtr)[:n])

		return out, nil
	}
}
