package compress

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopy-tools/canopy/errs"
	"github.com/canopy-tools/canopy/format"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// documentLike builds a payload shaped like an encoded document: repeated tag
// names followed by small little-endian integers.
func documentLike(n int) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, 36))
	for i := range n {
		buf.WriteString("divspanpli")
		buf.WriteString(strings.Repeat("x", i%7))
	}
	for i := range n {
		buf.Write([]byte{0, 0, 0, 0, byte(i), byte(i >> 8), 0, 0, byte(i + 1), byte((i + 1) >> 8), 0, 0})
	}

	return buf.Bytes()
}

// ==============================================================================
// Codec Round-Trip Tests
// ==============================================================================

func TestCodec_RoundTrip(t *testing.T) {
	sizes := []int{1, 16, 1000}

	for _, ct := range allTypes {
		for _, n := range sizes {
			t.Run(fmt.Sprintf("%s/%d", ct, n), func(t *testing.T) {
				codec, err := CreateCodec(ct)
				require.NoError(t, err)

				data := documentLike(n)
				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				restored, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, data, restored)
			})
		}
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			restored, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestCodec_CompressesDocuments(t *testing.T) {
	data := documentLike(2000)

	for _, ct := range allTypes[1:] {
		t.Run(ct.String(), func(t *testing.T) {
			out, stats, err := Compress(ct, data)
			require.NoError(t, err)
			require.Less(t, len(out), len(data))
			require.Equal(t, ct, stats.Algorithm)
			require.Equal(t, int64(len(data)), stats.OriginalSize)
			require.Equal(t, int64(len(out)), stats.CompressedSize)
			require.Greater(t, stats.SpaceSavings(), 0.0)

			restored, err := Decompress(ct, out)
			require.NoError(t, err)
			require.Equal(t, data, restored)
		})
	}
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	data := []byte("<p>")
	codec := NewNoOpCompressor()

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}

// ==============================================================================
// Error Tests
// ==============================================================================

func TestCodec_InvalidType(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(99))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, _, err = Compress(format.CompressionType(99), []byte("x"))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = Decompress(format.CompressionType(99), []byte("x"))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCodec_CorruptedInput(t *testing.T) {
	garbage := []byte{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa, 0xf9, 0xf8}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		t.Run(ct.String(), func(t *testing.T) {
			_, err := Decompress(ct, garbage)
			require.Error(t, err)
		})
	}
}

func TestStats(t *testing.T) {
	s := Stats{OriginalSize: 200, CompressedSize: 50}
	assert.InDelta(t, 0.25, s.Ratio(), 1e-9)
	assert.InDelta(t, 75.0, s.SpaceSavings(), 1e-9)

	var empty Stats
	assert.Zero(t, empty.Ratio())
	assert.Zero(t, empty.SpaceSavings())
}

// ==============================================================================
// Benchmarks
// ==============================================================================

func BenchmarkCodec_Compress(b *testing.B) {
	data := documentLike(5000)

	for _, ct := range allTypes {
		b.Run(ct.String(), func(b *testing.B) {
			codec, _ := GetCodec(ct)
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Compress(data)
			}
		})
	}
}

func BenchmarkCodec_Decompress(b *testing.B) {
	data := documentLike(5000)

	for _, ct := range allTypes {
		b.Run(ct.String(), func(b *testing.B) {
			codec, _ := GetCodec(ct)
			compressed, _ := codec.Compress(data)
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Decompress(compressed)
			}
		})
	}
}
