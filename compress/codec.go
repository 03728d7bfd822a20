package compress

import (
	"fmt"

	"github.com/canopy-tools/canopy/errs"
	"github.com/canopy-tools/canopy/format"
)

// Compressor compresses a whole encoded document.
//
// Memory management:
//   - Returned slice is owned by the caller
//   - Input slice is not modified
//   - Internal encoders may be reused across calls
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a document compressed by the matching Compressor.
//
// It returns an error if the data is corrupted or was produced by another algorithm.
//
// Thread Safety: Decompressor implementations must be safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes one compression operation.
type Stats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of the encoded document
	OriginalSize int64

	// CompressedSize is the size after compression
	CompressedSize int64
}

// Ratio returns compressed size / original size, or 0 for an empty input.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage.
func (s Stats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.Ratio()) * 100.0
}

// CreateCodec creates a new Codec for the compression type.
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

// Compress compresses data with the built-in codec for compressionType and
// reports the sizes involved.
func Compress(compressionType format.CompressionType, data []byte) ([]byte, Stats, error) {
	stats := Stats{Algorithm: compressionType, OriginalSize: int64(len(data))}

	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, stats, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, stats, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}
	stats.CompressedSize = int64(len(out))

	return out, stats, nil
}

// Decompress restores data with the built-in codec for compressionType.
func Decompress(compressionType format.CompressionType, data []byte) ([]byte, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%s decompression failed: %w", compressionType, err)
	}

	return out, nil
}
