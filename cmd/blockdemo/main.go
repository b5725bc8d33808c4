// Command blockdemo encodes a small synthetic series into a block, optionally compresses it
// with blockcompress, and decodes it back, printing the first and last three decoded samples
// and the raw block and framed byte sizes.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/heliotime/blockcodec/blockcompress"
	"github.com/heliotime/blockcodec/seriesid"
	"github.com/heliotime/blockcodec/store"

	"github.com/heliotime/blockcodec"
)

func main() {
	algoName := flag.String("algo", "none", "whole-block compression: none, s2, lz4, zstd")
	count := flag.Int("count", 200, "number of samples to generate")
	flag.Parse()

	algo, err := parseAlgorithm(*algoName)
	if err != nil {
		log.Fatal(err)
	}

	timestamps := make([]uint64, *count)
	values := make([]float64, *count)
	for i := range timestamps {
		timestamps[i] = uint64(1_700_000_000 + i*10)
		values[i] = 20.0 + float64(i%7)*0.1
	}

	seriesID := seriesid.FromName("cpu.usage")
	buf := make([]byte, 64*1024)
	blockData, err := blockcodec.EncodeSeries(seriesID, buf, timestamps, values)
	if err != nil {
		log.Fatalf("encode: %v", err)
	}

	var framed bytes.Buffer
	if err := store.Write(&framed, blockData, store.WithAlgorithm(algo)); err != nil {
		log.Fatalf("store write: %v", err)
	}

	decoded, err := store.Read(&framed)
	if err != nil {
		log.Fatalf("store read: %v", err)
	}

	gotID, samples, err := blockcodec.DecodeSeries(decoded)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	n := 0
	for ts, val := range samples {
		if n < 3 || n >= *count-3 {
			fmt.Fprintf(os.Stdout, "series=%d ts=%d val=%.3f\n", gotID, ts, val)
		}
		n++
	}

	fmt.Fprintf(os.Stdout, "%d samples, %d bytes raw block, %d bytes framed (%s)\n",
		n, len(blockData), framed.Len(), algo)
}

func parseAlgorithm(name string) (blockcompress.Algorithm, error) {
	switch name {
	case "none":
		return blockcompress.AlgorithmNone, nil
	case "s2":
		return blockcompress.AlgorithmS2, nil
	case "lz4":
		return blockcompress.AlgorithmLZ4, nil
	case "zstd":
		return blockcompress.AlgorithmZstd, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", name)
	}
}
