package codec

import (
	"go.uber.org/zap"

	"github.com/wippyai/hostbuf"
	"github.com/wippyai/hostbuf/errors"
)

// PutBytes encodes a byte sequence into a destination buffer whose length
// field holds the usable capacity. Payloads larger than the capacity are
// redirected through a temp file (spill); see doc.go for the contract.
//
// On the encode path the length field is a capacity, never a spill
// indicator: zero or negative values are rejected outright, even for empty
// payloads.
func (c *Codec) PutBytes(data []byte, buf *hostbuf.Buffer) error {
	if buf.IsNil() {
		return errors.NullPointer(errors.PhaseEncode)
	}

	capacity := int(buf.Length())
	if capacity <= 0 {
		return errors.TooSmall(errors.PhaseEncode, capacity, len(data))
	}
	if capacity > c.maxPayload {
		return errors.TooLarge(errors.PhaseEncode, capacity, c.maxPayload)
	}
	if capacity > buf.Cap() {
		return errors.TooLarge(errors.PhaseEncode, capacity, buf.Cap())
	}

	if len(data) > capacity {
		return c.spill(data, buf, capacity)
	}
	return c.putInline(data, buf)
}

// PutString encodes the UTF-8 representation of a string.
func (c *Codec) PutString(s string, buf *hostbuf.Buffer) error {
	return c.PutBytes([]byte(s), buf)
}

// PutJSON serializes a document with the configured payload codec and
// encodes the resulting bytes. Serialization failures surface before any
// buffer interaction.
func (c *Codec) PutJSON(doc map[string]any, buf *hostbuf.Buffer) error {
	data, err := c.structural.Marshal(doc)
	if err != nil {
		return errors.EncodeFailed(c.structural.Name(), err)
	}
	return c.PutBytes(data, buf)
}

// putInline copies data into the payload region and records the exact byte
// count in the length field. Fit has been checked by the caller; the bounds
// check here is against the view itself.
func (c *Codec) putInline(data []byte, buf *hostbuf.Buffer) error {
	dst, err := buf.Payload(len(data))
	if err != nil {
		return errors.TooSmall(errors.PhaseEncode, buf.Cap(), len(data))
	}
	if n := copy(dst, data); n != len(data) {
		return errors.CopyFailed(errors.PhaseEncode, n, len(data))
	}
	buf.SetLength(int32(len(data)))
	c.log.Debug("encoded inline payload", zap.Int("size", len(data)))
	return nil
}

// spill writes data to a temp file and encodes the file path instead,
// negating the length field to mark the redirect. capacity is the length
// field's value before any mutation. Any failure after the file is created
// deletes it before returning.
func (c *Codec) spill(data []byte, buf *hostbuf.Buffer, capacity int) error {
	path, err := c.writeTemp(data)
	if err != nil {
		return err
	}
	c.log.Debug("spilled payload",
		zap.Int("size", len(data)),
		zap.String("path", path))

	// Raw byte-length comparison against the original capacity. Re-invoking
	// PutBytes here could recurse into a second spill for the path string.
	if len(path) > capacity {
		c.remove(path)
		return errors.TooSmall(errors.PhaseSpill, capacity, len(path))
	}

	if err := c.putInline([]byte(path), buf); err != nil {
		c.remove(path)
		return err
	}
	buf.SetLength(int32(-len(path)))
	return nil
}
