package bufpool

import "sync/atomic"

// Buffer is a reference-counted byte buffer, optionally backed by one of
// the pool tiers in allocator.go. Callers that obtain one via
// NewFromPool must call Release exactly once per Retain (including the
// implicit initial retain held by the constructor).
type Buffer struct {
	data      []byte
	refCount  *atomic.Int32
	finalizer func([]byte)
}

// NewFromPool returns a Buffer of length size backed by the smallest
// pool tier that fits it (a direct allocation above the largest tier);
// Release returns a pooled buffer to its tier once the reference count
// reaches zero.
func NewFromPool(size int) *Buffer {
	return newWithFinalizer(alloc(size), free)
}

func newWithFinalizer(data []byte, finalizer func([]byte)) *Buffer {
	refCount := &atomic.Int32{}
	refCount.Store(1)
	return &Buffer{data: data, refCount: refCount, finalizer: finalizer}
}

// Data returns the underlying byte slice.
func (b *Buffer) Data() []byte { return b.data }

// Len returns the length of the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Retain increments the reference count.
func (b *Buffer) Retain() { b.refCount.Add(1) }

// Release decrements the reference count and returns the buffer to its
// pool once the count reaches zero.
func (b *Buffer) Release() {
	if b.refCount.Add(-1) == 0 && b.finalizer != nil {
		b.finalizer(b.data)
	}
}
