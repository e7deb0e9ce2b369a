package codec

import (
	"go.uber.org/zap"

	"github.com/wippyai/hostbuf"
	"github.com/wippyai/hostbuf/payload"
)

// Codec implements the buffer protocol. The zero configuration (no logger,
// JSON payloads, system temp dir, default size bound) suits most callers;
// use New with options to override.
type Codec struct {
	log        *zap.Logger
	structural payload.Codec
	tempDir    string
	maxPayload int
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger injects a diagnostic logger. The default is a no-op logger;
// all codec logging is at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *Codec) {
		if l != nil {
			c.log = l
		}
	}
}

// WithPayloadCodec selects the structural codec used by JSON and PutJSON.
func WithPayloadCodec(p payload.Codec) Option {
	return func(c *Codec) {
		if p != nil {
			c.structural = p
		}
	}
}

// WithTempDir overrides the directory for spill files. Empty means the
// system temp directory.
func WithTempDir(dir string) Option {
	return func(c *Codec) {
		c.tempDir = dir
	}
}

// WithMaxPayloadSize overrides the sanity bound on declared or implied
// payload lengths.
func WithMaxPayloadSize(n int) Option {
	return func(c *Codec) {
		if n > 0 {
			c.maxPayload = n
		}
	}
}

// New creates a Codec.
func New(opts ...Option) *Codec {
	c := &Codec{
		log:        zap.NewNop(),
		structural: payload.Default(),
		maxPayload: hostbuf.MaxPayloadSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// std backs the package-level convenience functions.
var std = New()

// Bytes decodes a buffer into an owned byte slice using the default codec.
func Bytes(buf *hostbuf.Buffer) ([]byte, error) { return std.Bytes(buf) }

// String decodes a buffer into a UTF-8 string using the default codec.
func String(buf *hostbuf.Buffer) (string, error) { return std.String(buf) }

// JSON decodes a buffer into a document using the default codec.
func JSON(buf *hostbuf.Buffer) (map[string]any, error) { return std.JSON(buf) }

// PutBytes encodes bytes into a buffer using the default codec.
func PutBytes(data []byte, buf *hostbuf.Buffer) error { return std.PutBytes(data, buf) }

// PutString encodes a string into a buffer using the default codec.
func PutString(s string, buf *hostbuf.Buffer) error { return std.PutString(s, buf) }

// PutJSON encodes a document into a buffer using the default codec.
func PutJSON(doc map[string]any, buf *hostbuf.Buffer) error { return std.PutJSON(doc, buf) }
