// Package pool provides reusable byte buffers for wire record assembly.
package pool

import (
	"sync"
)

const (
	// RecordBufferDefaultSize covers a typical point record or small patch.
	RecordBufferDefaultSize = 1024
	// RecordBufferMaxThreshold drops oversized buffers instead of pooling them.
	RecordBufferMaxThreshold = 1024 * 256

	// PatchBufferDefaultSize covers a mid-sized uncompressed patch payload.
	PatchBufferDefaultSize = 1024 * 64
	// PatchBufferMaxThreshold drops oversized patch buffers.
	PatchBufferMaxThreshold = 1024 * 1024 * 4
)

// ByteBuffer is a growable byte slice used as staging space while a wire
// record is assembled. Contents are copied out before the buffer returns to
// its pool.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the current length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer while keeping its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Small buffers grow by RecordBufferDefaultSize, larger ones
// by 25% of capacity, whichever covers the requirement.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := RecordBufferDefaultSize
	if cap(bb.B) > 4*RecordBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// CopyOut returns a freshly allocated copy of the buffer contents, safe to
// hand to the caller after the buffer goes back to its pool.
func (bb *ByteBuffer) CopyOut() []byte {
	out := make([]byte, len(bb.B))
	copy(out, bb.B)

	return out
}

// ByteBufferPool pools ByteBuffers, discarding ones that grew beyond the
// configured threshold to avoid retaining bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool producing buffers of defaultSize capacity.
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

// Get retrieves a reset ByteBuffer from the pool.
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

var (
	recordDefaultPool = NewByteBufferPool(RecordBufferDefaultSize, RecordBufferMaxThreshold)
	patchDefaultPool  = NewByteBufferPool(PatchBufferDefaultSize, PatchBufferMaxThreshold)
)

// GetRecordBuffer retrieves a staging buffer for point records.
func GetRecordBuffer() *ByteBuffer {
	return recordDefaultPool.Get()
}

// PutRecordBuffer returns a point record staging buffer to its pool.
func PutRecordBuffer(bb *ByteBuffer) {
	recordDefaultPool.Put(bb)
}

// GetPatchBuffer retrieves a staging buffer for patch records.
func GetPatchBuffer() *ByteBuffer {
	return patchDefaultPool.Get()
}

// PutPatchBuffer returns a patch record staging buffer to its pool.
func PutPatchBuffer(bb *ByteBuffer) {
	patchDefaultPool.Put(bb)
}
