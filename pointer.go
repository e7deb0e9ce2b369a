package hostbuf

import (
	"unsafe"

	"github.com/wippyai/hostbuf/errors"
)

// FromPointer builds a Buffer view over a raw address handed across the FFI
// boundary. This is the only place in the library that touches unsafe memory;
// everything downstream operates on the bounds-checked view.
//
// The region size is derived from the length field itself: a non-negative
// length declares that many payload bytes (or the capacity, for an output
// buffer), a negative length implies a spill path of |length| bytes. Lengths
// beyond MaxPayloadSize are rejected before any payload access.
//
// The view aliases foreign memory and must not be retained past the FFI call
// that produced the pointer.
func FromPointer(ptr unsafe.Pointer) (*Buffer, error) {
	if ptr == nil {
		return nil, errors.NullPointer(errors.PhaseParse)
	}
	raw := *(*int32)(ptr)
	size := int(int64(raw))
	if raw < 0 {
		size = int(-int64(raw))
	}
	if size > MaxPayloadSize {
		return nil, errors.TooLarge(errors.PhaseParse, size, MaxPayloadSize)
	}
	return &Buffer{data: unsafe.Slice((*byte)(ptr), HeaderSize+size)}, nil
}
