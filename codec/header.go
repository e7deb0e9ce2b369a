package codec

import (
	"github.com/wippyai/hostbuf"
	"github.com/wippyai/hostbuf/errors"
)

// region is the length field decoded into an explicit tag. The raw signed
// integer is interpreted exactly once, here; every downstream branch works
// on the tag.
type region struct {
	spilled bool
	// size counts inline payload bytes, or spill-path bytes when spilled.
	size int
}

// parseHeader validates the view and decodes its length field.
func (c *Codec) parseHeader(buf *hostbuf.Buffer, phase errors.Phase) (region, error) {
	if buf.IsNil() {
		return region{}, errors.NullPointer(phase)
	}

	raw := buf.Length()
	r := region{size: int(int64(raw))}
	if raw < 0 {
		// int64 negation avoids overflow at math.MinInt32.
		r = region{spilled: true, size: int(-int64(raw))}
	}

	if r.size > c.maxPayload {
		return region{}, errors.TooLarge(phase, r.size, c.maxPayload)
	}
	if r.size > buf.Cap() {
		return region{}, errors.TooLarge(phase, r.size, buf.Cap())
	}
	return r, nil
}
