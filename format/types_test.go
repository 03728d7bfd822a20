package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canopy-tools/canopy/errs"
)

func TestEventKind_String(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventDoctype, "Doctype"},
		{EventCharacters, "Characters"},
		{EventStartTag, "StartTag"},
		{EventEndTag, "EndTag"},
		{EventComment, "Comment"},
		{EventNullCharacter, "NullCharacter"},
		{EventParseError, "ParseError"},
		{EventEndOfStream, "EndOfStream"},
		{EventKind(0), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestEdgeKind_Values(t *testing.T) {
	// Edge kinds are written to the wire verbatim.
	require.Equal(t, uint32(0), uint32(EdgeChild))
	require.Equal(t, uint32(1), uint32(EdgeText))
	require.Equal(t, "child", EdgeChild.String())
	require.Equal(t, "text", EdgeText.String())
	require.Equal(t, "unknown", EdgeKind(7).String())
}

func TestParseCompressionType(t *testing.T) {
	tests := []struct {
		name    string
		want    CompressionType
		wantErr bool
	}{
		{"", CompressionNone, false},
		{"none", CompressionNone, false},
		{"zstd", CompressionZstd, false},
		{"s2", CompressionS2, false},
		{"lz4", CompressionLZ4, false},
		{"gzip", 0, true},
		{"ZSTD", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompressionType(tt.name)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidCompression)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
