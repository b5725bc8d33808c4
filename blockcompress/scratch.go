package blockcompress

import (
	"sync"

	"github.com/heliotime/blockcodec/block"
)

// scratchHint sizes pooled destination buffers from the block format's own worst-case chunk
// cost (block.Margin) rather than an arbitrary constant: a handful of full-chunk flushes'
// worth of bytes covers most single-block compressions without the underlying library ever
// growing a destination buffer from nil.
const scratchHint = 8 * block.Margin

// scratchPool pools destination buffers shared across every codec in this package. Each
// Compress/Decompress call borrows one instead of allocating a fresh destination, since the
// buffers this package compresses are always whole blocks bounded by the caller's own buffer
// size, not an unbounded stream.
var scratchPool = sync.Pool{
	New: func() any {
		buf := make([]byte, scratchHint)

		return &buf
	},
}

// scratchCapacity borrows a pooled buffer truncated to zero length but with at least n bytes
// of capacity, for libraries that append their result onto the destination slice (EncodeAll,
// DecodeAll, CompressLevel).
func scratchCapacity(n int) *[]byte {
	p, _ := scratchPool.Get().(*[]byte)
	buf := *p
	if cap(buf) < n {
		buf = make([]byte, 0, n)
	} else {
		buf = buf[:0]
	}
	*p = buf

	return p
}

// scratchFilled borrows a pooled buffer with length exactly n, for libraries that require a
// pre-sized destination slice (s2.Encode/Decode, lz4.CompressBlock/UncompressBlock).
func scratchFilled(n int) *[]byte {
	p, _ := scratchPool.Get().(*[]byte)
	buf := *p
	if cap(buf) < n {
		buf = make([]byte, n)
	} else {
		buf = buf[:n]
	}
	*p = buf

	return p
}

// putScratch returns a borrowed buffer to the pool.
func putScratch(p *[]byte) {
	scratchPool.Put(p)
}
