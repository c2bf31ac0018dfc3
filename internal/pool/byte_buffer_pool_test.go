package pool

import (
	"bytes"
	"errors"
	"io"
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
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_ReadFromAndReset(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.ReadFrom(bytes.NewReader([]byte("hello")))
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, []byte("hello"), bb.Bytes())

	bb.Limit = 10
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Zero(t, bb.Limit)
	assert.GreaterOrEqual(t, bb.Cap(), 5)
}

func TestByteBuffer_Grow(t *testing.T) {
	tests := []struct {
		name     string
		initial  int
		required int
		minCap   int
	}{
		{"sufficient capacity", 1024, 512, 1024},
		{"small buffer grows by chunk", 16, 32, 16 + ReadChunkSize},
		{"large requirement", 16, 3 * ReadChunkSize, 3 * ReadChunkSize},
		{"large buffer grows by quarter", 8 * ReadChunkSize, 8*ReadChunkSize + 1, 10 * ReadChunkSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := NewByteBuffer(tt.initial)
			bb.B = append(bb.B, make([]byte, min(tt.initial, tt.required))...)
			before := bb.Bytes()

			bb.Grow(tt.required)
			assert.GreaterOrEqual(t, bb.Cap()-bb.Len(), tt.required)
			assert.GreaterOrEqual(t, bb.Cap(), tt.minCap)
			assert.Equal(t, before, bb.Bytes())
		})
	}
}

func TestByteBuffer_ReadFrom(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 300_000) // spans several chunks

	bb := NewByteBuffer(0)
	n, err := bb.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, data, bb.Bytes())
}

func TestByteBuffer_ReadFrom_SmallReads(t *testing.T) {
	data := []byte("read one byte at a time")

	bb := NewByteBuffer(0)
	_, err := bb.ReadFrom(iotest.OneByteReader(bytes.NewReader(data)))
	require.NoError(t, err)
	assert.Equal(t, data, bb.Bytes())
}

func TestByteBuffer_ReadFrom_DataWithEOF(t *testing.T) {
	data := []byte("last chunk carries EOF")

	bb := NewByteBuffer(0)
	_, err := bb.ReadFrom(iotest.DataErrReader(bytes.NewReader(data)))
	require.NoError(t, err)
	assert.Equal(t, data, bb.Bytes())
}

func TestByteBuffer_ReadFrom_Empty(t *testing.T) {
	bb := NewByteBuffer(0)
	n, err := bb.ReadFrom(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, bb.Len())
}

func TestByteBuffer_ReadFrom_Error(t *testing.T) {
	wantErr := errors.New("device gone")
	r := io.MultiReader(bytes.NewReader([]byte("partial")), iotest.ErrReader(wantErr))

	bb := NewByteBuffer(0)
	n, err := bb.ReadFrom(r)
	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, []byte("partial"), bb.Bytes())
}

func TestByteBuffer_ReadFrom_Limit(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.Limit = 8

	_, err := bb.ReadFrom(bytes.NewReader([]byte("more than eight bytes")))
	require.ErrorIs(t, err, ErrLimitExceeded)
	assert.Equal(t, 8, bb.Len())

	bb.Reset()
	bb.Limit = 8
	_, err = bb.ReadFrom(bytes.NewReader([]byte("exactly8")))
	require.NoError(t, err)
	assert.Equal(t, []byte("exactly8"), bb.Bytes())
}

// =============================================================================
// ByteBufferPool Tests
// =============================================================================

func TestNewByteBufferPool(t *testing.T) {
	pool := NewByteBufferPool(8192, 65536)

	bb := pool.Get()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, cap(bb.B), 8192, "buffer should have at least default size")

	pool.Put(bb)
}

func TestByteBufferPool_PutResets(t *testing.T) {
	pool := NewByteBufferPool(64, 0)

	bb := pool.Get()
	_, _ = bb.ReadFrom(bytes.NewReader([]byte("stale")))
	bb.Limit = 3
	pool.Put(bb)

	bb = pool.Get()
	assert.Zero(t, bb.Len())
	assert.Zero(t, bb.Limit)
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	pool := NewByteBufferPool(1024, 4096)

	bb := pool.Get()
	bb.Grow(10000)
	assert.Greater(t, cap(bb.B), 4096, "buffer should have grown beyond threshold")

	// Put it back - should be discarded
	pool.Put(bb)

	bb2 := pool.Get()
	assert.LessOrEqual(t, cap(bb2.B), 4096, "should not reuse buffer larger than threshold")
}

func TestByteBufferPool_PutNil(t *testing.T) {
	require.NotPanics(t, func() {
		PutReadBuffer(nil)
	})
}

func TestReadBuffer_GetPut(t *testing.T) {
	bb := GetReadBuffer()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, bb.Cap(), ReadChunkSize)

	_, err := bb.ReadFrom(bytes.NewReader([]byte("stdin contents")))
	require.NoError(t, err)
	PutReadBuffer(bb)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 50
	const numIterations = 100

	pool := NewByteBufferPool(256, 4096)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				bb := pool.Get()
				_, _ = bb.ReadFrom(bytes.NewReader([]byte("data")))
				assert.Equal(t, 4, bb.Len())
				pool.Put(bb)
			}
		}()
	}

	wg.Wait()
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkByteBuffer_ReadFrom(b *testing.B) {
	data := bytes.Repeat([]byte("x"), 4*ReadChunkSize)
	b.SetBytes(int64(len(data)))

	for b.Loop() {
		bb := GetReadBuffer()
		if _, err := bb.ReadFrom(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
		PutReadBuffer(bb)
	}
}
