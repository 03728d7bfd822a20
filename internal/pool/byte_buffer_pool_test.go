package pool

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(TableBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(TableBufferDefaultSize)

	bb.MustWrite([]byte("hello"))
	assert.Equal(t, []byte("hello"), bb.B)

	bb.MustWrite([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.B)
	assert.Equal(t, 11, bb.Len())
}

func TestByteBuffer_WriteString(t *testing.T) {
	bb := NewByteBuffer(2)

	n, err := bb.WriteString("html")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = bb.WriteString("")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, _ = bb.WriteString("body")
	assert.Equal(t, "htmlbody", string(bb.Bytes()))
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(TableBufferDefaultSize)
	_, _ = bb.Write([]byte("test data"))

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())
}

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, io.ErrShortWrite
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(TableBufferDefaultSize)
	_, _ = bb.Write([]byte("data"))

	_, err := bb.WriteTo(errorWriter{})
	require.ErrorIs(t, err, io.ErrShortWrite)
}

func TestByteBuffer_ReadFrom(t *testing.T) {
	t.Run("drains reader", func(t *testing.T) {
		bb := NewByteBuffer(8)
		input := strings.Repeat("<p>canopy</p>", 500)

		n, err := bb.ReadFrom(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, int64(len(input)), n)
		assert.Equal(t, input, string(bb.Bytes()))
	})

	t.Run("one byte at a time", func(t *testing.T) {
		bb := NewByteBuffer(0)

		_, err := bb.ReadFrom(iotest.OneByteReader(strings.NewReader("<b>x</b>")))
		require.NoError(t, err)
		assert.Equal(t, "<b>x</b>", string(bb.Bytes()))
	})

	t.Run("appends to existing data", func(t *testing.T) {
		bb := NewByteBuffer(16)
		bb.MustWrite([]byte("ab"))

		_, err := bb.ReadFrom(strings.NewReader("cd"))
		require.NoError(t, err)
		assert.Equal(t, "abcd", string(bb.Bytes()))
	})

	t.Run("propagates error", func(t *testing.T) {
		bb := NewByteBuffer(16)
		boom := errors.New("boom")

		_, err := bb.ReadFrom(iotest.ErrReader(boom))
		require.ErrorIs(t, err, boom)
	})
}

func TestByteBuffer_Grow_SufficientCapacity(t *testing.T) {
	bb := NewByteBuffer(100)
	originalCap := cap(bb.B)

	bb.Grow(50)

	assert.Equal(t, originalCap, cap(bb.B), "should not grow when capacity is sufficient")
}

func TestByteBuffer_Grow_SmallBuffer(t *testing.T) {
	bb := NewByteBuffer(10)
	bb.B = append(bb.B, make([]byte, 10)...)

	bb.Grow(20)

	assert.GreaterOrEqual(t, cap(bb.B), 10+TableBufferDefaultSize)
}

func TestByteBuffer_Grow_LargeBuffer(t *testing.T) {
	size := 5 * TableBufferDefaultSize
	bb := NewByteBuffer(size)
	bb.B = append(bb.B, make([]byte, size)...)

	bb.Grow(1)

	assert.Equal(t, size+size/4, cap(bb.B), "large buffers grow by 25%")
}

func TestByteBuffer_Grow_PreservesData(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("data"))

	bb.Grow(TableBufferDefaultSize * 2)

	assert.Equal(t, []byte("data"), bb.B)
	assert.GreaterOrEqual(t, cap(bb.B)-len(bb.B), TableBufferDefaultSize*2)
}

// =============================================================================
// Pool Tests
// =============================================================================

func TestGetTableBuffer(t *testing.T) {
	bb := GetTableBuffer()
	defer PutTableBuffer(bb)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
}

func TestPutTableBuffer_NilBuffer(t *testing.T) {
	require.NotPanics(t, func() {
		PutTableBuffer(nil)
		PutInputBuffer(nil)
	})
}

func TestPool_ResetsClearsData(t *testing.T) {
	p := NewByteBufferPool(64, 0)

	bb := p.Get()
	bb.MustWrite([]byte("stale"))
	p.Put(bb)

	again := p.Get()
	assert.Equal(t, 0, again.Len(), "buffers from the pool must be empty")
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	bb.Grow(1024)
	require.Greater(t, bb.Cap(), 32)

	require.NotPanics(t, func() { p.Put(bb) })

	fresh := p.Get()
	assert.LessOrEqual(t, fresh.Cap(), 32, "oversized buffers are not returned to the pool")
}

func TestGetInputBuffer(t *testing.T) {
	bb := GetInputBuffer()
	defer PutInputBuffer(bb)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), 0)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb := GetTableBuffer()
				_, _ = bb.WriteString("concurrent")
				assert.Equal(t, "concurrent", string(bb.Bytes()))
				PutTableBuffer(bb)
			}
		}()
	}
	wg.Wait()
}
