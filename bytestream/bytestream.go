// Package bytestream provides a bounded cursor over a caller-supplied byte buffer.
//
// Writer and Reader never allocate or grow the underlying buffer: every write or read is a
// fixed-width operation against a slice the caller owns, and running out of room is reported
// as a boolean rather than a panic. Higher-level codecs (doublecodec, tscodec, block, chunk)
// build on top of this primitive, always in host byte order — the block format this module
// implements is explicitly scoped to a single process's memory layout.
package bytestream

import "encoding/binary"

// Writer is a bounded cursor over a caller-supplied byte slice.
//
// A Writer does not own buf; it only tracks how much of it has been used. The zero value is
// not usable; construct with NewWriter.
type Writer struct {
	buf       []byte
	pos       int
	committed bool
}

// NewWriter wraps buf in a Writer starting at offset 0.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.pos }

// SpaceLeft returns the number of bytes still available in the underlying buffer.
func (w *Writer) SpaceLeft() int { return len(w.buf) - w.pos }

// Bytes returns the portion of the underlying buffer written so far.
func (w *Writer) Bytes() []byte { return w.buf[:w.pos] }

// Commit finalizes the writing session. After Commit, PutRaw and the typed Put* methods
// refuse further writes. Patch handles obtained before Commit remain valid.
func (w *Writer) Commit() bool {
	w.committed = true
	return true
}

// PutRaw appends the given bytes verbatim, returning false (and writing nothing) if there is
// not enough room.
func (w *Writer) PutRaw(b []byte) bool {
	if w.committed || w.SpaceLeft() < len(b) {
		return false
	}
	copy(w.buf[w.pos:], b)
	w.pos += len(b)

	return true
}

// PutByte appends a single byte.
func (w *Writer) PutByte(v byte) bool {
	if w.committed || w.SpaceLeft() < 1 {
		return false
	}
	w.buf[w.pos] = v
	w.pos++

	return true
}

// PutUint16 appends v in host byte order.
func (w *Writer) PutUint16(v uint16) bool {
	if w.committed || w.SpaceLeft() < 2 {
		return false
	}
	binary.NativeEndian.PutUint16(w.buf[w.pos:], v)
	w.pos += 2

	return true
}

// PutUint64 appends v in host byte order.
func (w *Writer) PutUint64(v uint64) bool {
	if w.committed || w.SpaceLeft() < 8 {
		return false
	}
	binary.NativeEndian.PutUint64(w.buf[w.pos:], v)
	w.pos += 8

	return true
}

// PutFloat64 appends the IEEE-754 bit pattern of v in host byte order.
func (w *Writer) PutFloat64(v float64) bool {
	return w.PutUint64(Float64bits(v))
}

// PatchUint16 is a handle to a previously-reserved 2-byte window that can be filled in later,
// once the final value is known (e.g. an element count discovered only at Close time).
type PatchUint16 struct {
	buf []byte
}

// Set writes v into the reserved window. Calling it again simply overwrites the same bytes.
func (p PatchUint16) Set(v uint16) {
	binary.NativeEndian.PutUint16(p.buf, v)
}

// AllocateUint16 reserves 2 bytes and returns a handle that can be patched later, along with
// whether the reservation succeeded.
func (w *Writer) AllocateUint16() (PatchUint16, bool) {
	if w.committed || w.SpaceLeft() < 2 {
		return PatchUint16{}, false
	}
	p := PatchUint16{buf: w.buf[w.pos : w.pos+2]}
	w.pos += 2

	return p, true
}

// PutUint32 appends v in host byte order.
func (w *Writer) PutUint32(v uint32) bool {
	if w.committed || w.SpaceLeft() < 4 {
		return false
	}
	binary.NativeEndian.PutUint32(w.buf[w.pos:], v)
	w.pos += 4

	return true
}

// PatchUint32 is a handle to a previously-reserved 4-byte window, analogous to PatchUint16.
type PatchUint32 struct {
	buf []byte
}

// Set writes v into the reserved window.
func (p PatchUint32) Set(v uint32) {
	binary.NativeEndian.PutUint32(p.buf, v)
}

// AllocateUint32 reserves 4 bytes and returns a handle that can be patched later.
func (w *Writer) AllocateUint32() (PatchUint32, bool) {
	if w.committed || w.SpaceLeft() < 4 {
		return PatchUint32{}, false
	}
	p := PatchUint32{buf: w.buf[w.pos : w.pos+4]}
	w.pos += 4

	return p, true
}

// Reader is a bounded cursor over a caller-supplied byte slice, reading fixed-width values
// in host byte order.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf in a Reader starting at offset 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current read offset.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// ReadRaw reads exactly n bytes and advances the cursor. ok is false on underflow, in which
// case the cursor is not advanced and the returned slice is nil.
func (r *Reader) ReadRaw(n int) (b []byte, ok bool) {
	if r.Remaining() < n {
		return nil, false
	}
	b = r.buf[r.pos : r.pos+n]
	r.pos += n

	return b, true
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, bool) {
	if r.Remaining() < 1 {
		return 0, false
	}
	v := r.buf[r.pos]
	r.pos++

	return v, true
}

// ReadUint16 reads a uint16 in host byte order.
func (r *Reader) ReadUint16() (uint16, bool) {
	if r.Remaining() < 2 {
		return 0, false
	}
	v := binary.NativeEndian.Uint16(r.buf[r.pos:])
	r.pos += 2

	return v, true
}

// ReadUint64 reads a uint64 in host byte order.
func (r *Reader) ReadUint64() (uint64, bool) {
	if r.Remaining() < 8 {
		return 0, false
	}
	v := binary.NativeEndian.Uint64(r.buf[r.pos:])
	r.pos += 8

	return v, true
}

// ReadUint32 reads a uint32 in host byte order.
func (r *Reader) ReadUint32() (uint32, bool) {
	if r.Remaining() < 4 {
		return 0, false
	}
	v := binary.NativeEndian.Uint32(r.buf[r.pos:])
	r.pos += 4

	return v, true
}

// ReadFloat64 reads an IEEE-754 double from its host-order bit pattern.
func (r *Reader) ReadFloat64() (float64, bool) {
	bits, ok := r.ReadUint64()
	if !ok {
		return 0, false
	}

	return Float64frombits(bits), true
}
