// Package store provides a thin io.Writer/io.Reader framing helper around an already-encoded
// block buffer (as produced by block.Writer), wiring in optional whole-buffer compression from
// blockcompress. It frames a single block per call and is agnostic to whatever outer
// directory or file layout a caller builds on top; several blocks can be framed back to back
// onto the same stream by calling Write/Read repeatedly.
//
// Unlike the block package's header, which is host-byte-order only by design, this framing
// uses a fixed big-endian length field: a stream or file written by one machine may be read
// back by another with a different native endianness, even though the block payload it
// carries is not itself portable across architectures.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/heliotime/blockcodec/blockcompress"
)

// frameHeaderSize is the fixed cost of one frame's prefix: a 1-byte algorithm tag followed
// by a 4-byte big-endian payload length.
const frameHeaderSize = 1 + 4

// options holds the configuration built up by Option values.
type options struct {
	algo blockcompress.Algorithm
}

// Option configures Write.
type Option func(*options)

// WithAlgorithm selects the whole-buffer compression algorithm Write applies. The default,
// when no Option is given, is blockcompress.AlgorithmNone.
func WithAlgorithm(algo blockcompress.Algorithm) Option {
	return func(o *options) { o.algo = algo }
}

// Write compresses blockData (per the configured Option) and writes one framed record to w:
// a 1-byte algorithm tag, a 4-byte big-endian payload length, then the compressed payload.
func Write(w io.Writer, blockData []byte, opts ...Option) error {
	cfg := options{algo: blockcompress.AlgorithmNone}
	for _, opt := range opts {
		opt(&cfg)
	}

	codec, err := blockcompress.CreateCodec(cfg.algo)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	compressed, err := codec.Compress(blockData)
	if err != nil {
		return fmt.Errorf("store: compress: %w", err)
	}

	header := make([]byte, frameHeaderSize)
	header[0] = byte(cfg.algo)
	binary.BigEndian.PutUint32(header[1:], uint32(len(compressed))) //nolint:gosec // frame sizes are well within 4GB

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("store: write frame header: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("store: write frame payload: %w", err)
	}

	return nil
}

// Read reads one framed record from r and returns the decompressed block buffer. It returns
// io.EOF (unwrapped, matching io.Reader convention) if r is exhausted before any frame bytes
// are read.
func Read(r io.Reader) ([]byte, error) {
	header := make([]byte, frameHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("store: truncated frame header: %w", err)
		}

		return nil, err
	}

	algo := blockcompress.Algorithm(header[0])
	payloadLen := binary.BigEndian.Uint32(header[1:])

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("store: truncated frame payload: %w", err)
	}

	codec, err := blockcompress.CreateCodec(algo)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	blockData, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("store: decompress: %w", err)
	}

	return blockData, nil
}
