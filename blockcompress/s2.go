package blockcompress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses whole block buffers with S2, a Snappy-compatible format tuned for
// speed over ratio.
type S2Compressor struct{}

var _ Codec = S2Compressor{}

// NewS2Compressor creates an S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data using S2 into a pooled, block-sized scratch buffer instead of
// letting s2.Encode allocate its own destination.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dstPtr := scratchFilled(s2.MaxEncodedLen(len(data)))
	defer putScratch(dstPtr)

	encoded := s2.Encode(*dstPtr, data)
	out := make([]byte, len(encoded))
	copy(out, encoded)

	return out, nil
}

// Decompress decompresses S2-compressed data into a scratch buffer sized exactly to the
// decoded length, which S2's own frame header already carries.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}

	dstPtr := scratchFilled(n)
	defer putScratch(dstPtr)

	decoded, err := s2.Decode(*dstPtr, data)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(decoded))
	copy(out, decoded)

	return out, nil
}
