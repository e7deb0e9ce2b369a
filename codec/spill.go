package codec

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wippyai/hostbuf"
	"github.com/wippyai/hostbuf/errors"
)

// spillPrefix names spill files so stray ones are attributable.
const spillPrefix = "hostbuf-"

// writeTemp writes data to a new uniquely named file in the configured temp
// directory. The random suffix plus O_EXCL makes concurrent spills
// collision-free. The caller owns the returned path.
func (c *Codec) writeTemp(data []byte) (string, error) {
	dir := c.tempDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, spillPrefix+uuid.NewString())

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", errors.TempFileWrite(err)
	}
	_, werr := f.Write(data)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		c.remove(path)
		return "", errors.TempFileWrite(werr)
	}
	return path, nil
}

// remove deletes a spill file best-effort. Failures are logged, not
// propagated: removal only happens while unwinding from a prior failure or
// on the caller's explicit request to discard.
func (c *Codec) remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		c.log.Debug("removing spill file failed",
			zap.String("path", path),
			zap.Error(err))
	}
}

// SpillPath reports whether a buffer is a spill indicator and, if so, the
// temp-file path it names. It performs no file I/O.
func (c *Codec) SpillPath(buf *hostbuf.Buffer) (string, bool, error) {
	reg, err := c.parseHeader(buf, errors.PhaseSpill)
	if err != nil {
		return "", false, err
	}
	if !reg.spilled {
		return "", false, nil
	}
	raw, err := buf.Payload(reg.size)
	if err != nil {
		return "", false, errors.TooLarge(errors.PhaseSpill, reg.size, buf.Cap())
	}
	if !utf8.Valid(raw) {
		return "", false, errors.InvalidUTF8(errors.PhaseSpill, raw)
	}
	return string(raw), true, nil
}

// RemoveSpill deletes the temp file named by a spill buffer, making the
// caller side of the read-then-delete contract explicit. Buffers that are
// not spills are a no-op. A file already gone is not an error.
func (c *Codec) RemoveSpill(buf *hostbuf.Buffer) error {
	path, ok, err := c.SpillPath(buf)
	if err != nil || !ok {
		return err
	}
	c.remove(path)
	return nil
}
