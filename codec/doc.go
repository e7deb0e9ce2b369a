// Package codec implements the buffer protocol's encode and decode paths.
//
// # Protocol Overview
//
// The codec moves data between Go-owned values and caller-owned buffers:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Go value ←→ [Codec] ←→ caller buffer (or spill file)     │
//	└──────────────────────────────────────────────────────────┘
//
// Three payload kinds share one byte-oriented path:
//
//	Bytes / PutBytes    raw byte sequences
//	String / PutString  UTF-8 validated text
//	JSON / PutJSON      documents via an injected payload.Codec
//
// # Decoding Flow
//
//  1. Reject nil views (null pointer at the FFI boundary).
//  2. Parse the length field once into a tagged region: inline(n) for a
//     non-negative length, spilled(pathLen) for a negative one. Downstream
//     code branches on the tag, never on the raw integer.
//  3. Inline: copy the first n payload bytes into Go-owned memory.
//     Spilled: validate the path as UTF-8 and read the file wholesale.
//     Decodes are idempotent and never delete the spill file.
//
// # Encoding Flow
//
//  1. Reject nil views. The current length field is the usable capacity;
//     a capacity of zero or less always fails, even for empty payloads.
//  2. If the payload fits, copy it in and set the length field to the exact
//     byte count.
//  3. Otherwise spill: write the payload to a uniquely named temp file and
//     encode the file path instead, negating the length field to mark the
//     redirect. A spill that cannot be delivered (path longer than the
//     buffer, or any later failure) deletes its file before returning.
//
// On a successful spill, ownership of the temp file passes to the caller:
// read it, then remove it (SpillPath and RemoveSpill make that contract
// explicit).
//
// # State
//
// Every call is a single-shot, stateless transformation. A Codec carries
// only configuration (logger, payload codec, temp dir, size bound) and is
// safe for concurrent use on distinct buffers.
package codec
