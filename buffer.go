package hostbuf

import (
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the fixed buffer header: a 32-bit length field followed
	// by a 32-bit reserved field. The 8-byte header keeps the payload region
	// 8-byte aligned for downstream native-type reinterpretation.
	HeaderSize = 8

	// MaxPayloadSize bounds any declared or implied payload length. Lengths
	// beyond it are treated as corrupt headers rather than honored.
	MaxPayloadSize = 1 << 30
)

// Buffer is a bounds-checked view over a caller-allocated buffer region.
// All field access goes through methods; no address arithmetic leaks out of
// this package. A nil Buffer stands for the foreign caller's null pointer
// and is rejected by every codec operation.
//
// The view does not own the underlying memory and must not outlive it.
type Buffer struct {
	data []byte
}

// New allocates a buffer with the given payload capacity and pre-populates
// the length field with that capacity, ready to be passed as an output
// parameter.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	b := &Buffer{data: make([]byte, HeaderSize+capacity)}
	b.SetLength(int32(capacity))
	return b
}

// FromSlice wraps an existing buffer image. The slice must be at least
// HeaderSize bytes; its tail past the header is the payload region.
//
// Alignment of the payload region is the caller's concern: slices produced
// by New are 8-byte aligned, arbitrary sub-slices may not be.
func FromSlice(data []byte) (*Buffer, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("hostbuf: buffer image is %d bytes, need at least %d", len(data), HeaderSize)
	}
	return &Buffer{data: data}, nil
}

// IsNil reports whether the view stands for a null pointer.
func (b *Buffer) IsNil() bool {
	return b == nil || b.data == nil
}

// Length returns the raw signed length field. Non-negative values count
// inline payload bytes (or, before a write call, the usable capacity);
// negative values mark a spill whose path occupies |length| payload bytes.
func (b *Buffer) Length() int32 {
	return int32(binary.NativeEndian.Uint32(b.data[0:4]))
}

// SetLength overwrites the length field.
func (b *Buffer) SetLength(n int32) {
	binary.NativeEndian.PutUint32(b.data[0:4], uint32(n))
}

// Cap returns the size of the payload region backing this view.
func (b *Buffer) Cap() int {
	return len(b.data) - HeaderSize
}

// Payload returns the first n bytes of the payload region, bounds-checked
// against the view. The returned slice aliases caller memory and must not be
// retained past the current call.
func (b *Buffer) Payload(n int) ([]byte, error) {
	if n < 0 || n > b.Cap() {
		return nil, fmt.Errorf("hostbuf: payload length %d out of bounds (capacity %d)", n, b.Cap())
	}
	return b.data[HeaderSize : HeaderSize+n], nil
}

// Image returns the raw bytes of the whole buffer, header included. Useful
// for persisting or inspecting a buffer; the slice aliases the view.
func (b *Buffer) Image() []byte {
	return b.data
}
