package pool

import (
	"io"
	"sync"
)

const (
	// FooterBufferDefaultSize covers a complete footer (record, length word,
	// magic marker) for any realistic build-identity string.
	FooterBufferDefaultSize = 256
	// FooterBufferMaxThreshold caps what the pool retains; larger buffers are
	// dropped instead of pooled.
	FooterBufferMaxThreshold = 4 * 1024
)

// ByteBuffer is a reusable byte slice wrapper for footer serialization.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
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
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally and discards buffers that grew past the
// configured threshold to avoid retaining oversized memory.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
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
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var footerDefaultPool = NewByteBufferPool(FooterBufferDefaultSize, FooterBufferMaxThreshold)

// GetFooterBuffer retrieves a ByteBuffer from the default footer pool.
func GetFooterBuffer() *ByteBuffer {
	return footerDefaultPool.Get()
}

// PutFooterBuffer returns a ByteBuffer to the default footer pool.
func PutFooterBuffer(bb *ByteBuffer) {
	footerDefaultPool.Put(bb)
}
