package payload

import (
	"encoding/json"
)

// JSON implements Codec using JSON serialization.
// This is the default codec, matching the buffer protocol's document type.
type JSON struct{}

// Marshal serializes a document to JSON bytes
func (c JSON) Marshal(doc map[string]any) ([]byte, error) {
	return json.Marshal(doc)
}

// Unmarshal deserializes JSON bytes to a document
func (c JSON) Unmarshal(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ContentType returns the MIME type for JSON
func (c JSON) ContentType() string {
	return "application/json"
}

// Name returns the codec identifier
func (c JSON) Name() string {
	return "json"
}

// Compile-time check
var _ Codec = JSON{}
