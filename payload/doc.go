// Package payload provides structural codecs for document payloads carried
// through the buffer protocol.
//
// The buffer codec treats a document as an opaque byte sequence; this package
// is the collaborator that turns a map[string]any into those bytes and back.
//
// Supported formats:
//   - JSON (default, human-readable)
//   - MessagePack (binary, compact)
//   - CBOR (binary, RFC 8949)
//
// All implementations are stateless and safe for concurrent use.
package payload
