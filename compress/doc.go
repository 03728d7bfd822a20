// Package compress provides optional whole-document codecs for canopy documents.
//
// A canopy document is self-describing only when stored uncompressed; a compressed
// document is the raw codec output with no framing, so the reader must know which
// codec was used (the canopyc CLI takes it as a flag).
//
// # Supported Algorithms
//
//   - format.CompressionNone: documents pass through unchanged
//   - format.CompressionZstd: best ratio, moderate speed
//   - format.CompressionS2: fast, Snappy-compatible block format
//   - format.CompressionLZ4: fastest decompression, raw LZ4 blocks
//
// # Usage
//
//	packed, stats, err := compress.Compress(format.CompressionZstd, doc)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("saved %.1f%%\n", stats.SpaceSavings())
//
//	doc, err = compress.Decompress(format.CompressionZstd, packed)
//
// Built-in codecs returned by GetCodec are shared and safe for concurrent use.
// CreateCodec returns a fresh instance.
package compress
