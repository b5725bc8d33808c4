package blockcompress

// ZstdCompressor compresses whole block buffers with Zstandard. It favors compression ratio
// over speed, making it a fit for cold storage of historical blocks rather than the hot write
// path. The Compress/Decompress methods are implemented in zstd_cgo.go or zstd_pure.go,
// selected by the cgo build tag.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor creates a Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
