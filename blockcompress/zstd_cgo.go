//go:build cgo

package blockcompress

import "github.com/valyala/gozstd"

// Compress compresses data using the cgo-accelerated gozstd binding, appending onto a pooled
// block-sized scratch buffer instead of letting gozstd allocate its destination from nil.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	dstPtr := scratchCapacity(scratchHint)
	defer putScratch(dstPtr)

	compressed := gozstd.CompressLevel(*dstPtr, data, 3)
	out := make([]byte, len(compressed))
	copy(out, compressed)

	return out, nil
}

// Decompress decompresses Zstd data using the cgo-accelerated gozstd binding and a pooled
// scratch buffer.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dstPtr := scratchCapacity(scratchHint)
	defer putScratch(dstPtr)

	decompressed, err := gozstd.Decompress(*dstPtr, data)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(decompressed))
	copy(out, decompressed)

	return out, nil
}
