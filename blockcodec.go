// Package blockcodec provides a compact binary format for time-series data blocks: a series
// identifier plus a sequence of (timestamp, value) samples, compressed with an FCM-predictor
// XOR codec for the float64 values and a delta/run-length codec for the uint64 timestamps.
//
// # Core Features
//
//   - Pair-based XOR residual codec for IEEE-754 doubles (package doublecodec)
//   - Delta + run-length-encoded timestamp codec (package tscodec)
//   - Fixed-layout block format with a compressed main section and an uncompressed tail
//     fallback for partial chunks (package block)
//   - A legacy three-column chunk format for callers that haven't migrated (package chunk)
//   - Optional whole-block compression (None, S2, LZ4, Zstd) layered on top (package
//     blockcompress) and a small stream-framing helper (package store)
//
// # Basic Usage
//
//	import "github.com/heliotime/blockcodec"
//
//	seriesID := seriesid.FromName("cpu.usage")
//	buf := make([]byte, 4096)
//	data, err := blockcodec.EncodeSeries(seriesID, buf, timestamps, values)
//
//	_, samples, err := blockcodec.DecodeSeries(data)
//	for ts, val := range samples {
//	    fmt.Printf("ts=%d val=%f\n", ts, val)
//	}
//
// This package is a convenience wrapper around block.Writer/block.Reader for callers who
// don't need fine-grained control over incremental writes. Use the block package directly to
// stream samples one at a time instead of building a full slice up front.
package blockcodec

import (
	"fmt"
	"iter"

	"github.com/heliotime/blockcodec/block"
	"github.com/heliotime/blockcodec/errs"
)

// EncodeSeries encodes timestamps and values (must be the same length) into buf as a single
// block tagged with seriesID, returning the written portion of buf.
func EncodeSeries(seriesID uint64, buf []byte, timestamps []uint64, values []float64) ([]byte, error) {
	if len(timestamps) != len(values) {
		return nil, fmt.Errorf("%w: timestamps and values must have equal length", errs.ErrBadArgument)
	}

	w, err := block.NewWriter(seriesID, buf)
	if err != nil {
		return nil, err
	}

	for i, ts := range timestamps {
		status, err := w.Put(ts, values[i])
		if err != nil {
			return nil, err
		}
		if status == block.StatusOverflow {
			return nil, fmt.Errorf("%w", errs.ErrBufferOverflow)
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf[:w.Len()], nil
}

// DecodeSeries returns the series id and a range-over-func iterator over every (timestamp,
// value) sample encoded in data. A malformed buffer simply yields no further samples rather
// than panicking; callers that need to observe the decode error should use block.NewReader
// and block.Reader.Next directly.
func DecodeSeries(data []byte) (uint64, iter.Seq2[uint64, float64], error) {
	r, err := block.NewReader(data)
	if err != nil {
		return 0, nil, err
	}

	return r.SeriesID(), r.All(), nil
}
