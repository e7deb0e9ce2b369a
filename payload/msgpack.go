package payload

import (
	"github.com/vmihailenco/msgpack/v5"
)

// MsgPack implements Codec using MessagePack serialization.
// MessagePack is a binary format that's more compact than JSON while
// maintaining schema-less flexibility, and supports binary data natively.
type MsgPack struct{}

// Marshal serializes a document to MessagePack bytes
func (c MsgPack) Marshal(doc map[string]any) ([]byte, error) {
	return msgpack.Marshal(doc)
}

// Unmarshal deserializes MessagePack bytes to a document
func (c MsgPack) Unmarshal(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ContentType returns the MIME type for MessagePack
func (c MsgPack) ContentType() string {
	return "application/msgpack"
}

// Name returns the codec identifier
func (c MsgPack) Name() string {
	return "msgpack"
}

// Compile-time check
var _ Codec = MsgPack{}
