package payload

// Codec serializes document payloads for the buffer protocol.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Marshal serializes a document to bytes.
	Marshal(doc map[string]any) ([]byte, error)

	// Unmarshal deserializes bytes to a document. Map key order is
	// irrelevant; values carry standard dynamically-typed semantics
	// (nil, bool, number, string, array, object).
	Unmarshal(data []byte) (map[string]any, error)

	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Name returns a short identifier for this codec (e.g., "json", "msgpack").
	Name() string
}

// Default returns the default codec (JSON)
func Default() Codec {
	return JSON{}
}

// ByName returns the codec registered under the given name, or false when
// the name is unknown. Used by tooling that selects a codec from config.
func ByName(name string) (Codec, bool) {
	switch name {
	case "", "json":
		return JSON{}, true
	case "msgpack":
		return MsgPack{}, true
	case "cbor":
		return CBOR{}, true
	}
	return nil, false
}
