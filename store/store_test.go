package store

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heliotime/blockcodec/block"
	"github.com/heliotime/blockcodec/blockcompress"
)

func encodedBlock(t *testing.T) []byte {
	t.Helper()
	buf := make([]byte, 4096)
	w, err := block.NewWriter(1234, buf)
	require.NoError(t, err)
	for i := 0; i < 40; i++ {
		status, err := w.Put(uint64(i*10), float64(i))
		require.NoError(t, err)
		require.Equal(t, block.StatusOK, status)
	}
	require.NoError(t, w.Close())

	return buf
}

func TestWriteReadRoundTrip(t *testing.T) {
	for _, algo := range []blockcompress.Algorithm{
		blockcompress.AlgorithmNone, blockcompress.AlgorithmS2,
		blockcompress.AlgorithmLZ4, blockcompress.AlgorithmZstd,
	} {
		t.Run(algo.String(), func(t *testing.T) {
			original := encodedBlock(t)

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, original, WithAlgorithm(algo)))

			got, err := Read(&buf)
			require.NoError(t, err)
			require.Equal(t, original, got)
		})
	}
}

func TestMultipleFramesOnOneStream(t *testing.T) {
	blockA := encodedBlock(t)
	blockB := []byte("not a real block, just bytes to frame")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, blockA, WithAlgorithm(blockcompress.AlgorithmS2)))
	require.NoError(t, Write(&buf, blockB, WithAlgorithm(blockcompress.AlgorithmNone)))

	gotA, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, blockA, gotA)

	gotB, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, blockB, gotB)

	_, err = Read(&buf)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadRejectsTruncatedHeader(t *testing.T) {
	buf := bytes.NewReader([]byte{0x00, 0x01})
	_, err := Read(buf)
	require.Error(t, err)
}
