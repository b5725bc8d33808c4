package tscodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heliotime/blockcodec/bytestream"
)

func encodeAll(t *testing.T, values []uint64) []byte {
	t.Helper()
	buf := make([]byte, 4096)
	bw := bytestream.NewWriter(buf)
	w := NewWriter(bw)
	require.True(t, w.TPut(values))
	require.True(t, w.Commit())
	require.True(t, bw.Commit())

	return bw.Bytes()
}

func decodeAll(t *testing.T, data []byte, count int) []uint64 {
	t.Helper()
	br := bytestream.NewReader(data)
	r := NewReader(br)
	out := make([]uint64, count)
	for i := range out {
		v, ok := r.Next()
		require.True(t, ok, "decode failed at index %d", i)
		out[i] = v
	}

	return out
}

func TestRoundTripRegularInterval(t *testing.T) {
	values := make([]uint64, 20)
	for i := range values {
		values[i] = uint64(1000 + i*10)
	}
	data := encodeAll(t, values)
	got := decodeAll(t, data, len(values))
	require.Equal(t, values, got)
}

func TestRoundTripRepeatedTimestamps(t *testing.T) {
	values := []uint64{5, 5, 5, 5, 5, 5}
	data := encodeAll(t, values)
	got := decodeAll(t, data, len(values))
	require.Equal(t, values, got)
}

func TestRoundTripIrregularValues(t *testing.T) {
	values := []uint64{1, 3, 2, 2, 100, 1, 1, 1, 0}
	data := encodeAll(t, values)
	got := decodeAll(t, data, len(values))
	require.Equal(t, values, got)
}

func TestRoundTripSingleValue(t *testing.T) {
	values := []uint64{42}
	data := encodeAll(t, values)
	got := decodeAll(t, data, len(values))
	require.Equal(t, values, got)
}

func TestRoundTripLongRunSpansMultipleControlBytes(t *testing.T) {
	values := make([]uint64, 300)
	for i := range values {
		values[i] = uint64(i) // constant delta of 1, run longer than maxRunLength
	}
	data := encodeAll(t, values)
	got := decodeAll(t, data, len(values))
	require.Equal(t, values, got)
}

func TestRoundTripBackwardsDelta(t *testing.T) {
	values := []uint64{1000, 900, 950, 10, 10, 10, 5}
	data := encodeAll(t, values)
	got := decodeAll(t, data, len(values))
	require.Equal(t, values, got)
}

func TestEmptySequenceCommitsCleanly(t *testing.T) {
	data := encodeAll(t, nil)
	require.Equal(t, 0, len(data))
}

func TestSharedUnderlyingStream(t *testing.T) {
	buf := make([]byte, 4096)
	bw := bytestream.NewWriter(buf)

	wa := NewWriter(bw)
	require.True(t, wa.TPut([]uint64{10, 20, 30}))
	require.True(t, wa.Commit())

	wb := NewWriter(bw)
	require.True(t, wb.TPut([]uint64{1, 1, 1}))
	require.True(t, wb.Commit())

	require.True(t, bw.Commit())

	br := bytestream.NewReader(bw.Bytes())
	ra := NewReader(br)
	for _, want := range []uint64{10, 20, 30} {
		got, ok := ra.Next()
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	rb := NewReader(br)
	for _, want := range []uint64{1, 1, 1} {
		got, ok := rb.Next()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestOverflowStopsCleanly(t *testing.T) {
	buf := make([]byte, 1)
	bw := bytestream.NewWriter(buf)
	w := NewWriter(bw)

	require.False(t, w.Put(1000)) // 1000 needs a two-byte varint, buffer only holds one
}

func TestZigzagRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, -128, 1 << 40, -(1 << 40)} {
		require.Equal(t, v, zigzagDecode(zigzagEncode(v)))
	}
}
