package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canopy-tools/canopy/errs"
)

func TestNewHeader(t *testing.T) {
	t.Run("Empty document", func(t *testing.T) {
		h, err := NewHeader([SectionCount]int{})
		require.NoError(t, err)

		for i, w := range h.Words {
			require.Equal(t, uint32(HeaderSize), w, "word %d", i)
		}
		require.Equal(t, uint32(36), h.Size())
	})

	t.Run("Cumulative offsets", func(t *testing.T) {
		sizes := [SectionCount]int{1, 0, 2, 8, 0, 8, 0, 24}
		h, err := NewHeader(sizes)
		require.NoError(t, err)

		require.Equal(t, [HeaderWords]uint32{36, 37, 37, 39, 47, 47, 55, 55, 79}, h.Words)
		for i, s := range Sections {
			require.Equal(t, uint32(sizes[i]), h.SectionSize(s), "section %s", s)
		}
	})

	t.Run("Negative size", func(t *testing.T) {
		_, err := NewHeader([SectionCount]int{0, -1})
		require.ErrorIs(t, err, errs.ErrInvalidHeader)
	})

	t.Run("Overflow", func(t *testing.T) {
		_, err := NewHeader([SectionCount]int{MaxOffset})
		require.ErrorIs(t, err, errs.ErrDocumentTooLarge)
	})
}

func TestHeader_BytesAndParse(t *testing.T) {
	original, err := NewHeader([SectionCount]int{1, 2, 3, 8, 16, 8, 8, 12})
	require.NoError(t, err)

	data := original.Bytes()
	require.Len(t, data, HeaderSize)
	require.Equal(t, []byte{36, 0, 0, 0}, data[:4])

	var parsed Header
	require.NoError(t, parsed.Parse(data))
	require.Equal(t, original, parsed)

	t.Run("Short buffer", func(t *testing.T) {
		var h Header
		err := h.Parse(data[:HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})
}

func TestHeader_AppendTo(t *testing.T) {
	h, err := NewHeader([SectionCount]int{})
	require.NoError(t, err)

	buf := h.AppendTo([]byte{0xff})
	require.Len(t, buf, HeaderSize+1)
	require.Equal(t, byte(0xff), buf[0])
	require.Equal(t, h.Bytes(), buf[1:])
}

func TestHeader_Validate(t *testing.T) {
	valid, err := NewHeader([SectionCount]int{3, 0, 0, 8, 0, 0, 0, 12})
	require.NoError(t, err)
	require.NoError(t, valid.Validate(int(valid.Size())))

	tests := []struct {
		name   string
		mutate func(h *Header)
		size   int
		want   error
	}{
		{
			name:   "Wrong header size word",
			mutate: func(h *Header) { h.Words[0] = 32 },
			size:   int(valid.Size()),
			want:   errs.ErrInvalidHeader,
		},
		{
			name:   "Decreasing words",
			mutate: func(h *Header) { h.Words[2] = h.Words[1] - 1 },
			size:   int(valid.Size()),
			want:   errs.ErrInvalidHeader,
		},
		{
			name:   "Size mismatch",
			mutate: func(h *Header) {},
			size:   int(valid.Size()) + 1,
			want:   errs.ErrSectionOutOfBounds,
		},
		{
			name: "Misaligned offsets",
			mutate: func(h *Header) {
				for k := int(KeysOffsets); k < HeaderWords; k++ {
					h.Words[k] -= 4
				}
			},
			size: int(valid.Size()) - 4,
			want: errs.ErrMisalignedSection,
		},
		{
			name: "Misaligned element edges",
			mutate: func(h *Header) {
				h.Words[ElementEdges] -= 4
			},
			size: int(valid.Size()) - 4,
			want: errs.ErrMisalignedSection,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := valid
			tt.mutate(&h)
			require.ErrorIs(t, h.Validate(tt.size), tt.want)
		})
	}
}

func TestHeader_SectionRange(t *testing.T) {
	h, err := NewHeader([SectionCount]int{1, 2, 3, 8, 8, 8, 8, 12})
	require.NoError(t, err)

	start, end := h.SectionRange(KeysText)
	require.Equal(t, uint32(36), start)
	require.Equal(t, uint32(37), end)

	start, end = h.SectionRange(ElementEdges)
	require.Equal(t, h.Words[7], start)
	require.Equal(t, h.Size(), end)

	require.Panics(t, func() { h.SectionRange(Section(0)) })
	require.Panics(t, func() { h.SectionRange(Section(9)) })
}

func TestSection_RecordSize(t *testing.T) {
	require.Equal(t, 1, KeysText.RecordSize())
	require.Equal(t, 8, TextsOffsets.RecordSize())
	require.Equal(t, 8, AttributeEdges.RecordSize())
	require.Equal(t, 12, ElementEdges.RecordSize())
	require.Equal(t, "edges.element", ElementEdges.String())
	require.Equal(t, "unknown", Section(42).String())
}
