// Package block implements the fixed-layout data block: a header naming a series and the
// sample counts that follow, a main section of fixed-size compressed chunks, and a tail
// section of uncompressed samples for whatever doesn't fill a complete chunk.
package block

import (
	"fmt"
	"io"
	"iter"

	"github.com/heliotime/blockcodec/bytestream"
	"github.com/heliotime/blockcodec/doublecodec"
	"github.com/heliotime/blockcodec/errs"
	"github.com/heliotime/blockcodec/tscodec"
)

// Version is the header version tag this module writes and the only one its Reader accepts.
const Version uint16 = 1

// ChunkSize is the number of samples grouped into one compressed timestamp/value batch.
const ChunkSize = 16

// Margin is the worst-case byte cost of flushing one full chunk, with slack above the true
// worst case rather than sitting flush against it. The timestamp batch's worst case is a
// leading 10-byte raw varint plus, for each of the remaining ChunkSize-1 samples, a run that
// never merges (its own control byte plus a full 10-byte zigzag varint) — 11 bytes per sample,
// not 9, since a length-1 run shares its control byte with nothing: 10+15*11 = 175 bytes for
// ChunkSize=16. The value batch's worst case is ChunkSize/2 pairs at 17 bytes each (one
// control byte plus two 8-byte residuals): 136 bytes. The true worst case for one chunk is
// therefore 311 bytes; Put refuses to start buffering a new chunk once fewer than Margin bytes
// remain, so a flush that was greenlit by roomForChunk can never actually overflow, and the
// margin must stay comfortably above 311 rather than flush against it.
const Margin = 21 * ChunkSize

// headerSize is the fixed byte cost of the block header: version + mainSize + tailSize +
// seriesID.
const headerSize = 2 + 2 + 2 + 8

// Status reports the outcome of a single Put call.
type Status int

const (
	// StatusOK indicates the sample was accepted, either into the pending chunk or the tail.
	StatusOK Status = iota
	// StatusOverflow indicates the sample could not be written because the buffer is full.
	StatusOverflow
)

// Writer encodes samples into a caller-supplied buffer, one block at a time.
type Writer struct {
	out           *bytestream.Writer
	mainSizePatch bytestream.PatchUint16
	tailSizePatch bytestream.PatchUint16

	scratchTS  [ChunkSize]uint64
	scratchVal [ChunkSize]float64
	scratchLen int

	mainCount uint16
	tailCount uint16
}

// NewWriter creates a Writer over buf, writing the fixed header immediately. It returns
// errs.ErrBufferTooSmall if buf cannot even hold the header.
func NewWriter(seriesID uint64, buf []byte) (*Writer, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrBufferTooSmall, headerSize, len(buf))
	}

	out := bytestream.NewWriter(buf)
	if !out.PutUint16(Version) {
		return nil, fmt.Errorf("%w", errs.ErrBufferTooSmall)
	}
	mainPatch, ok := out.AllocateUint16()
	if !ok {
		return nil, fmt.Errorf("%w", errs.ErrBufferTooSmall)
	}
	tailPatch, ok := out.AllocateUint16()
	if !ok {
		return nil, fmt.Errorf("%w", errs.ErrBufferTooSmall)
	}
	if !out.PutUint64(seriesID) {
		return nil, fmt.Errorf("%w", errs.ErrBufferTooSmall)
	}

	return &Writer{out: out, mainSizePatch: mainPatch, tailSizePatch: tailPatch}, nil
}

// Put appends one sample, buffering it into the current chunk when there is enough space
// left for a full chunk flush, or appending it uncompressed to the tail otherwise.
func (w *Writer) Put(ts uint64, value float64) (Status, error) {
	if w.roomForChunk() {
		w.scratchTS[w.scratchLen] = ts
		w.scratchVal[w.scratchLen] = value
		w.scratchLen++
		if w.scratchLen == ChunkSize {
			w.flushChunk()
		}

		return StatusOK, nil
	}

	if w.scratchLen != 0 {
		return StatusOverflow, fmt.Errorf("%w", errs.ErrScratchNotEmpty)
	}
	if !w.out.PutUint64(ts) || !w.out.PutFloat64(value) {
		return StatusOverflow, nil
	}
	w.tailCount++

	return StatusOK, nil
}

// Len returns the number of bytes written to the underlying buffer so far.
func (w *Writer) Len() int { return w.out.Len() }

// Close patches the header's sample counts and finalizes the underlying buffer. Any samples
// still sitting in the scratch buffer (fewer than ChunkSize, so they could never form a full
// chunk) are flushed through the uncompressed tail path rather than dropped.
func (w *Writer) Close() error {
	for i := 0; i < w.scratchLen; i++ {
		if !w.out.PutUint64(w.scratchTS[i]) || !w.out.PutFloat64(w.scratchVal[i]) {
			return fmt.Errorf("%w: flushing trailing scratch samples", errs.ErrBufferOverflow)
		}
		w.tailCount++
	}
	w.scratchLen = 0

	w.mainSizePatch.Set(w.mainCount)
	w.tailSizePatch.Set(w.tailCount)
	w.out.Commit()

	return nil
}

// roomForChunk reports whether enough space remains to flush one full chunk.
func (w *Writer) roomForChunk() bool {
	return w.scratchLen > 0 || w.out.SpaceLeft() >= Margin
}

// flushChunk writes one compressed timestamp batch followed by one compressed value batch
// for the currently buffered ChunkSize samples.
func (w *Writer) flushChunk() {
	tw := tscodec.NewWriter(w.out)
	if !tw.TPut(w.scratchTS[:w.scratchLen]) || !tw.Commit() {
		panic("block: chunk flush overflowed despite roomForChunk margin")
	}

	vw := doublecodec.NewWriter(w.out)
	if !vw.TPut(w.scratchVal[:w.scratchLen]) || !vw.Commit() {
		panic("block: chunk flush overflowed despite roomForChunk margin")
	}

	w.mainCount += uint16(w.scratchLen) //nolint:gosec // scratchLen bounded by ChunkSize
	w.scratchLen = 0
}

// Reader decodes samples previously written by Writer.
type Reader struct {
	in       *bytestream.Reader
	seriesID uint64
	mainSize uint16
	tailSize uint16
	consumed uint16

	chunkTS  [ChunkSize]uint64
	chunkVal [ChunkSize]float64
}

// NewReader parses the header of buf and returns a Reader positioned at the first sample.
func NewReader(buf []byte) (*Reader, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%w: truncated header", errs.ErrBadData)
	}
	in := bytestream.NewReader(buf)

	version, ok := in.ReadUint16()
	if !ok {
		return nil, fmt.Errorf("%w: truncated header", errs.ErrBadData)
	}
	if version != Version {
		return nil, fmt.Errorf("%w: %w: got %d, want %d", errs.ErrBadData, errs.ErrVersionMismatch, version, Version)
	}
	mainSize, ok := in.ReadUint16()
	if !ok {
		return nil, fmt.Errorf("%w: truncated header", errs.ErrBadData)
	}
	tailSize, ok := in.ReadUint16()
	if !ok {
		return nil, fmt.Errorf("%w: truncated header", errs.ErrBadData)
	}
	seriesID, ok := in.ReadUint64()
	if !ok {
		return nil, fmt.Errorf("%w: truncated header", errs.ErrBadData)
	}
	if mainSize%ChunkSize != 0 {
		return nil, fmt.Errorf("%w: mainSize %d is not a multiple of ChunkSize", errs.ErrBadData, mainSize)
	}

	return &Reader{in: in, seriesID: seriesID, mainSize: mainSize, tailSize: tailSize}, nil
}

// SeriesID returns the block's series identifier.
func (r *Reader) SeriesID() uint64 { return r.seriesID }

// Len returns the total number of samples (main plus tail) this block holds.
func (r *Reader) Len() int { return int(r.mainSize) + int(r.tailSize) }

// Next decodes and returns the next sample. It returns io.EOF once every sample has been
// returned, or a wrapped errs.ErrBadData if the buffer is malformed.
func (r *Reader) Next() (uint64, float64, error) {
	if r.consumed < r.mainSize {
		idx := int(r.consumed % ChunkSize)
		if idx == 0 {
			if err := r.loadChunk(); err != nil {
				return 0, 0, err
			}
		}
		ts, val := r.chunkTS[idx], r.chunkVal[idx]
		r.consumed++

		return ts, val, nil
	}

	if r.consumed < r.mainSize+r.tailSize {
		ts, ok := r.in.ReadUint64()
		if !ok {
			return 0, 0, fmt.Errorf("%w: truncated tail", errs.ErrBadData)
		}
		val, ok := r.in.ReadFloat64()
		if !ok {
			return 0, 0, fmt.Errorf("%w: truncated tail", errs.ErrBadData)
		}
		r.consumed++

		return ts, val, nil
	}

	return 0, 0, io.EOF
}

// loadChunk decodes one full compressed timestamp batch and one full compressed value batch
// into the reader's scratch arrays.
func (r *Reader) loadChunk() error {
	tr := tscodec.NewReader(r.in)
	for i := 0; i < ChunkSize; i++ {
		v, ok := tr.Next()
		if !ok {
			return fmt.Errorf("%w: truncated timestamp chunk", errs.ErrBadData)
		}
		r.chunkTS[i] = v
	}

	vr := doublecodec.NewReader(r.in)
	for i := 0; i < ChunkSize; i++ {
		v, ok := vr.Next()
		if !ok {
			return fmt.Errorf("%w: truncated value chunk", errs.ErrBadData)
		}
		r.chunkVal[i] = v
	}

	return nil
}

// All returns a range-over-func iterator over every (timestamp, value) sample in the block,
// stopping early (without reporting an error) if the underlying data is malformed. Callers
// that need to observe a malformed-data error should drive Next directly instead.
func (r *Reader) All() iter.Seq2[uint64, float64] {
	return func(yield func(uint64, float64) bool) {
		for {
			ts, val, err := r.Next()
			if err != nil {
				return
			}
			if !yield(ts, val) {
				return
			}
		}
	}
}
