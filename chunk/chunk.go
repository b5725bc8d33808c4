// Package chunk implements the legacy three-column chunk format: parameter ids, timestamps,
// and values are encoded as three independent, self-delimiting sub-streams rather than
// interleaved into a single block. It predates the block package's fixed-chunk main/tail
// layout and exists for callers and on-disk data that still speak the older wire format.
package chunk

import (
	"fmt"
	"sort"

	"github.com/heliotime/blockcodec/bytestream"
	"github.com/heliotime/blockcodec/doublecodec"
	"github.com/heliotime/blockcodec/errs"
	"github.com/heliotime/blockcodec/tscodec"
)

// nColumns is the fixed column-count tag this module writes; the wire format reserves the
// field for a future multi-column extension, but only a single value column is implemented.
const nColumns = 1

// Encode packs paramIDs, timestamps, and values (all of equal length) into buf and returns
// the number of bytes written along with the minimum and maximum timestamp observed.
func Encode(buf []byte, paramIDs, timestamps []uint64, values []float64) (n int, tsBegin, tsEnd uint64, err error) {
	if len(paramIDs) != len(timestamps) || len(timestamps) != len(values) {
		return 0, 0, 0, fmt.Errorf("%w: paramIDs, timestamps and values must have equal length", errs.ErrBadArgument)
	}

	out := bytestream.NewWriter(buf)

	if err := encodeTimestampStream(out, paramIDs); err != nil {
		return 0, 0, 0, err
	}
	if err := encodeTimestampStream(out, timestamps); err != nil {
		return 0, 0, 0, err
	}

	if !out.PutUint32(nColumns) {
		return 0, 0, 0, fmt.Errorf("%w", errs.ErrBufferOverflow)
	}
	if !out.PutUint32(uint32(len(values))) { //nolint:gosec // chunk sizes are small in practice
		return 0, 0, 0, fmt.Errorf("%w", errs.ErrBufferOverflow)
	}

	vw := doublecodec.NewWriter(out)
	if !vw.TPut(values) || !vw.Commit() {
		return 0, 0, 0, fmt.Errorf("%w: value stream", errs.ErrBufferOverflow)
	}

	out.Commit()

	tsBegin, tsEnd = minMax(timestamps)

	return out.Len(), tsBegin, tsEnd, nil
}

// encodeTimestampStream writes a length-prefixed, delta-RLE-encoded sub-stream for a column
// of uint64 values (used for both the paramID and timestamp columns).
func encodeTimestampStream(out *bytestream.Writer, column []uint64) error {
	lenPatch, ok := out.AllocateUint32()
	if !ok {
		return fmt.Errorf("%w", errs.ErrBufferOverflow)
	}
	start := out.Len()

	w := tscodec.NewWriter(out)
	if !w.TPut(column) || !w.Commit() {
		return fmt.Errorf("%w: column stream", errs.ErrBufferOverflow)
	}
	lenPatch.Set(uint32(out.Len() - start)) //nolint:gosec // bounded by caller's buffer size

	return nil
}

// Decode unpacks a buffer previously written by Encode. The returned slices are freshly
// allocated and independent of buf.
func Decode(buf []byte) (paramIDs, timestamps []uint64, values []float64, err error) {
	in := bytestream.NewReader(buf)

	paramIDs, err = decodeTimestampStream(in)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("paramID stream: %w", err)
	}
	timestamps, err = decodeTimestampStream(in)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("timestamp stream: %w", err)
	}
	if len(paramIDs) != len(timestamps) {
		return nil, nil, nil, fmt.Errorf("%w: paramID/timestamp column length mismatch", errs.ErrBadData)
	}

	cols, ok := in.ReadUint32()
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: truncated nColumns", errs.ErrBadData)
	}
	if cols != nColumns {
		return nil, nil, nil, fmt.Errorf("%w: unsupported nColumns %d", errs.ErrBadData, cols)
	}

	count, ok := in.ReadUint32()
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: truncated value count", errs.ErrBadData)
	}

	vr := doublecodec.NewReader(in)
	values = make([]float64, count)
	for i := range values {
		v, ok := vr.Next()
		if !ok {
			return nil, nil, nil, fmt.Errorf("%w: truncated value stream", errs.ErrBadData)
		}
		values[i] = v
	}

	return paramIDs, timestamps, values, nil
}

// decodeTimestampStream reads a length-prefixed delta-RLE sub-stream and decodes every value
// it holds, stopping once the sub-stream's declared byte length is exhausted.
func decodeTimestampStream(in *bytestream.Reader) ([]uint64, error) {
	byteLen, ok := in.ReadUint32()
	if !ok {
		return nil, fmt.Errorf("%w: truncated length prefix", errs.ErrBadData)
	}
	body, ok := in.ReadRaw(int(byteLen))
	if !ok {
		return nil, fmt.Errorf("%w: truncated body", errs.ErrBadData)
	}

	sub := bytestream.NewReader(body)
	r := tscodec.NewReader(sub)

	var out []uint64
	for sub.Remaining() > 0 {
		v, ok := r.Next()
		if !ok {
			return nil, fmt.Errorf("%w: malformed column stream", errs.ErrBadData)
		}
		out = append(out, v)
	}

	return out, nil
}

// minMax returns the minimum and maximum of values, or (0, 0) for an empty slice.
func minMax(values []uint64) (min, max uint64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return min, max
}

// SortByTime returns copies of paramIDs, timestamps, and values reordered by ascending
// timestamp, using a stable sort so samples with equal timestamps keep their original
// relative order.
func SortByTime(paramIDs, timestamps []uint64, values []float64) ([]uint64, []uint64, []float64) {
	idx := sortedIndex(len(timestamps), func(a, b int) bool { return timestamps[a] < timestamps[b] })

	return permute(paramIDs, idx), permute(timestamps, idx), permute(values, idx)
}

// SortByParamID returns copies of paramIDs, timestamps, and values reordered by ascending
// parameter id, using a stable sort so samples with equal parameter ids keep their original
// relative order.
func SortByParamID(paramIDs, timestamps []uint64, values []float64) ([]uint64, []uint64, []float64) {
	idx := sortedIndex(len(paramIDs), func(a, b int) bool { return paramIDs[a] < paramIDs[b] })

	return permute(paramIDs, idx), permute(timestamps, idx), permute(values, idx)
}

// sortedIndex builds the identity permutation 0..n and stable-sorts it by less.
func sortedIndex(n int, less func(a, b int) bool) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return less(idx[a], idx[b]) })

	return idx
}

// permute returns a new slice with src reordered according to idx.
func permute[T any](src []T, idx []int) []T {
	out := make([]T, len(src))
	for i, j := range idx {
		out[i] = src[j]
	}

	return out
}
