//go:build !cgo

package blockcompress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools decoders; klauspost/compress/zstd decoders are explicitly designed
// to run allocation-free after a warmup, so keeping one around per goroutine pays off.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("blockcompress: failed to create zstd decoder: %v", err))
		}

		return decoder
	},
}

// zstdEncoderPool pools encoders for the same reason.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("blockcompress: failed to create zstd encoder: %v", err))
		}

		return encoder
	},
}

// Compress compresses data using a pooled zstd encoder, feeding it a pooled block-sized
// scratch buffer instead of letting EncodeAll allocate its destination from nil.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	dstPtr := scratchCapacity(scratchHint)
	defer putScratch(dstPtr)

	compressed := encoder.EncodeAll(data, *dstPtr)
	out := make([]byte, len(compressed))
	copy(out, compressed)

	return out, nil
}

// Decompress decompresses Zstd data using a pooled decoder and a pooled scratch buffer.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	dstPtr := scratchCapacity(scratchHint)
	defer putScratch(dstPtr)

	decompressed, err := decoder.DecodeAll(data, *dstPtr)
	if err != nil {
		return nil, fmt.Errorf("blockcompress: zstd decompression failed: %w", err)
	}
	out := make([]byte, len(decompressed))
	copy(out, decompressed)

	return out, nil
}
