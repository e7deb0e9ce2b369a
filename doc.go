// Package hostbuf implements a cross-language buffer protocol for exchanging
// byte payloads, UTF-8 strings, and JSON documents between a Go library and
// callers written in arbitrary host languages.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	hostbuf/         Root package with the Buffer view type and header layout
//	├── codec/       Encode/decode between native values and buffers,
//	│                including the temp-file spill path for oversized payloads
//	├── payload/     Structural codecs for document payloads (JSON default,
//	│                MessagePack, CBOR)
//	├── errors/      Structured error types with FFI sentinel codes
//	├── demo/        Example FFI-style entry points built on the codec
//	└── cmd/bufdump/ Buffer image inspector
//
// # Buffer Layout
//
// Every buffer is a caller-allocated contiguous region with a fixed 8-byte
// header followed by the payload region:
//
//	Offset  Size  Field
//	──────────────────────────────────────────────
//	0       4     length (int32, native byte order)
//	4       4     reserved (never read or written)
//	8       N     payload region
//
// The sign of the length field selects the interpretation. A non-negative
// length means the payload region holds that many bytes inline. A negative
// length means the payload was too large for the buffer and was spilled to a
// temporary file: the payload region holds a UTF-8 file path of |length|
// bytes, and the true payload is the file's contents.
//
// On the write path the caller pre-populates the length field with the
// buffer's usable payload capacity; the codec overwrites it with the actual
// length (or the negated spill-path length) on success.
//
// # Quick Start
//
// Exchange a string through a buffer:
//
//	buf := hostbuf.New(256)
//	if err := codec.PutString("hello", buf); err != nil {
//	    log.Fatal(err)
//	}
//	s, err := codec.String(buf) // "hello"
//
// Foreign callers hand over raw addresses; ingestion is confined to
// FromPointer, which builds a bounds-checked view:
//
//	view, err := hostbuf.FromPointer(ptr)
//	if err != nil {
//	    return errors.CodeOf(err)
//	}
//	data, err := codec.Bytes(view)
//
// # Thread Safety
//
// The codec holds no shared mutable state: concurrent calls are safe as long
// as each call operates on a distinct buffer. Spill files use
// collision-resistant unique names, so concurrent spills never collide.
//
// # Memory Model
//
// A Buffer view never owns the memory it describes. Decoding always copies
// into Go-owned memory; the codec never retains a view past the duration of
// a single call, never writes past the declared capacity, and never reads
// past the declared (or spill-path implied) length.
package hostbuf
