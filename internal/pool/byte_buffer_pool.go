package pool

import (
	"errors"
	"io"
	"sync"
)

const (
	ReadChunkSize       = 1024 * 1024      // 1MiB, read size per ReadFrom iteration
	ReadBufferMaxRetain = 1024 * 1024 * 16 // 16MiB, larger buffers are not pooled
)

// ErrLimitExceeded is returned by ReadFrom when the reader holds more than the limit.
var ErrLimitExceeded = errors.New("pool: read limit exceeded")

// ByteBuffer is a growable byte slice that slurps readers.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte

	// Limit caps the bytes ReadFrom accepts; zero means unlimited.
	Limit int64
}

var _ io.ReaderFrom = (*ByteBuffer)(nil)

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
	bb.Limit = 0
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For buffers up to 4 chunks, grow by ReadChunkSize.
//   - For larger buffers, grow by 25% of current capacity to balance memory usage and reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return // Sufficient capacity
	}

	growBy := ReadChunkSize
	if cap(bb.B) > 4*ReadChunkSize {
		growBy = cap(bb.B) / 4
	}

	// Ensure we grow enough for at least the required bytes
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ReadFrom appends everything r yields until io.EOF, reading in chunks of
// ReadChunkSize. The bytes read before an error stay in the buffer.
//
// Returns:
//   - int64: Number of bytes appended
//   - error: The reader's error, or ErrLimitExceeded when more than Limit bytes are available
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		bb.Grow(ReadChunkSize)

		start := len(bb.B)
		n, err := r.Read(bb.B[start:cap(bb.B)])
		bb.B = bb.B[:start+n]
		total += int64(n)

		if bb.Limit > 0 && int64(len(bb.B)) > bb.Limit {
			bb.B = bb.B[:bb.Limit]
			return total, ErrLimitExceeded
		}

		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// The pool can be configured with a maximum size threshold to avoid retaining
// overly large buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum size threshold for buffers
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var readDefaultPool = NewByteBufferPool(ReadChunkSize, ReadBufferMaxRetain)

// GetReadBuffer retrieves a ByteBuffer from the default read pool.
func GetReadBuffer() *ByteBuffer {
	return readDefaultPool.Get()
}

// PutReadBuffer returns a ByteBuffer to the default read pool.
func PutReadBuffer(bb *ByteBuffer) {
	readDefaultPool.Put(bb)
}
