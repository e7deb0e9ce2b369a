package codec

import (
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/wippyai/hostbuf"
	"github.com/wippyai/hostbuf/errors"
)

// Bytes decodes a buffer into an owned byte slice. Inline payloads are
// copied out of caller memory; spilled payloads are read from the temp file
// named in the payload region. The spill file is left in place and the call
// is idempotent.
func (c *Codec) Bytes(buf *hostbuf.Buffer) ([]byte, error) {
	reg, err := c.parseHeader(buf, errors.PhaseDecode)
	if err != nil {
		return nil, err
	}

	if reg.spilled {
		return c.readSpill(buf, reg.size)
	}

	src, err := buf.Payload(reg.size)
	if err != nil {
		return nil, errors.TooLarge(errors.PhaseDecode, reg.size, buf.Cap())
	}
	out := make([]byte, reg.size)
	if n := copy(out, src); n != reg.size {
		return nil, errors.CopyFailed(errors.PhaseDecode, n, reg.size)
	}
	c.log.Debug("decoded inline payload", zap.Int("size", reg.size))
	return out, nil
}

// String decodes a buffer into a UTF-8 string. Invalid UTF-8 is rejected,
// never replaced or truncated.
func (c *Codec) String(buf *hostbuf.Buffer) (string, error) {
	data, err := c.Bytes(buf)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.InvalidUTF8(errors.PhaseDecode, data)
	}
	return string(data), nil
}

// JSON decodes a buffer into a document using the configured payload codec.
// I/O and UTF-8 failures from the byte path surface first; codec rejection
// is reported as a decode failure layered on top.
func (c *Codec) JSON(buf *hostbuf.Buffer) (map[string]any, error) {
	data, err := c.Bytes(buf)
	if err != nil {
		return nil, err
	}
	doc, err := c.structural.Unmarshal(data)
	if err != nil {
		return nil, errors.DecodeFailed(c.structural.Name(), err)
	}
	return doc, nil
}

// readSpill resolves a spill indicator: the first pathLen payload bytes are
// a UTF-8 file path whose contents are the true payload.
func (c *Codec) readSpill(buf *hostbuf.Buffer, pathLen int) ([]byte, error) {
	raw, err := buf.Payload(pathLen)
	if err != nil {
		return nil, errors.TooLarge(errors.PhaseDecode, pathLen, buf.Cap())
	}
	if !utf8.Valid(raw) {
		return nil, errors.InvalidUTF8(errors.PhaseDecode, raw)
	}
	path := string(raw)

	c.log.Debug("reading spill file", zap.String("path", path))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.TempFileRead(path, err)
	}
	return data, nil
}
