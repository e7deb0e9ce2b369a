package payload

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// cborDecMode decodes nested maps as map[string]any instead of the fxamacker
// default map[any]any, keeping CBOR documents shape-compatible with JSON.
var cborDecMode, _ = cbor.DecOptions{
	DefaultMapType: reflect.TypeOf(map[string]any(nil)),
}.DecMode()

// CBOR implements Codec using CBOR (RFC 8949) serialization.
type CBOR struct{}

// Marshal serializes a document to CBOR bytes
func (c CBOR) Marshal(doc map[string]any) ([]byte, error) {
	return cbor.Marshal(doc)
}

// Unmarshal deserializes CBOR bytes to a document
func (c CBOR) Unmarshal(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := cborDecMode.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ContentType returns the MIME type for CBOR
func (c CBOR) ContentType() string {
	return "application/cbor"
}

// Name returns the codec identifier
func (c CBOR) Name() string {
	return "cbor"
}

// Compile-time check
var _ Codec = CBOR{}
