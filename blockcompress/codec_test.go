package blockcompress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heliotime/blockcodec/errs"
)

func payload() []byte {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i % 17) // mildly repetitive, compresses but isn't trivially empty
	}

	return data
}

func TestCodecsRoundTrip(t *testing.T) {
	for _, algo := range []Algorithm{AlgorithmNone, AlgorithmS2, AlgorithmLZ4, AlgorithmZstd} {
		t.Run(algo.String(), func(t *testing.T) {
			codec, err := CreateCodec(algo)
			require.NoError(t, err)

			data := payload()
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestCodecsHandleEmptyInput(t *testing.T) {
	for _, algo := range []Algorithm{AlgorithmNone, AlgorithmS2, AlgorithmLZ4, AlgorithmZstd} {
		t.Run(algo.String(), func(t *testing.T) {
			codec, err := CreateCodec(algo)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCreateCodecRejectsUnknownAlgorithm(t *testing.T) {
	_, err := CreateCodec(Algorithm(99))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

// TestCodecsReturnIndependentBuffersAcrossCalls guards against the scratch pool aliasing two
// outstanding results: a result returned by Compress or Decompress must survive the next call
// to the same codec untouched, even though both calls may borrow the same pooled buffer.
func TestCodecsReturnIndependentBuffersAcrossCalls(t *testing.T) {
	for _, algo := range []Algorithm{AlgorithmNone, AlgorithmS2, AlgorithmLZ4, AlgorithmZstd} {
		t.Run(algo.String(), func(t *testing.T) {
			codec, err := CreateCodec(algo)
			require.NoError(t, err)

			first := payload()
			firstCompressed, err := codec.Compress(first)
			require.NoError(t, err)
			firstCompressedCopy := append([]byte(nil), firstCompressed...)

			second := make([]byte, len(first))
			for i := range second {
				second[i] = byte(i % 23)
			}
			_, err = codec.Compress(second)
			require.NoError(t, err)

			require.Equal(t, firstCompressedCopy, firstCompressed, "first result mutated by a later call")

			decompressed, err := codec.Decompress(firstCompressed)
			require.NoError(t, err)
			require.Equal(t, first, decompressed)
		})
	}
}
