package codec

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/hostbuf"
	"github.com/wippyai/hostbuf/errors"
	"github.com/wippyai/hostbuf/payload"
)

// spillIndicator builds a buffer whose payload region names the given path.
func spillIndicator(t *testing.T, path string) *hostbuf.Buffer {
	t.Helper()
	buf := hostbuf.New(len(path) + 32)
	copy(buf.Image()[hostbuf.HeaderSize:], path)
	buf.SetLength(int32(-len(path)))
	return buf
}

func TestBytes_NilBuffer(t *testing.T) {
	c := New()

	if _, err := c.Bytes(nil); errors.CodeOf(err) != errors.CodeNullPointer {
		t.Errorf("Bytes(nil) = %v, want null_pointer", err)
	}
	if _, err := c.String(nil); errors.CodeOf(err) != errors.CodeNullPointer {
		t.Error("String(nil): want null_pointer")
	}
	if _, err := c.JSON(nil); errors.CodeOf(err) != errors.CodeNullPointer {
		t.Error("JSON(nil): want null_pointer")
	}
}

func TestBytes_CopiesOutOfCallerMemory(t *testing.T) {
	c := New()
	buf := hostbuf.New(16)
	if err := c.PutBytes([]byte("aaaa"), buf); err != nil {
		t.Fatalf("PutBytes: %v", err)
	}

	got, err := c.Bytes(buf)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	copy(buf.Image()[hostbuf.HeaderSize:], "bbbb")
	if !bytes.Equal(got, []byte("aaaa")) {
		t.Error("decoded bytes alias caller memory")
	}
}

func TestBytes_LengthBeyondBound(t *testing.T) {
	c := New(WithMaxPayloadSize(8))
	buf := hostbuf.New(64)
	buf.SetLength(32)

	if _, err := c.Bytes(buf); errors.CodeOf(err) != errors.CodeBufferTooLarge {
		t.Errorf("Bytes = %v, want buffer_too_large", err)
	}

	// Implied spill-path length is bounded the same way.
	buf.SetLength(-32)
	if _, err := c.Bytes(buf); errors.CodeOf(err) != errors.CodeBufferTooLarge {
		t.Errorf("Bytes (spill) = %v, want buffer_too_large", err)
	}
}

func TestString_InvalidUTF8(t *testing.T) {
	c := New()
	buf := hostbuf.New(16)
	if err := c.PutBytes([]byte{0xff, 0xfe, 0xfd}, buf); err != nil {
		t.Fatalf("PutBytes: %v", err)
	}

	if _, err := c.String(buf); errors.CodeOf(err) != errors.CodeInvalidUTF8 {
		t.Errorf("String = %v, want invalid_utf8", err)
	}

	// The identical bytes decode fine on the raw path.
	got, err := c.Bytes(buf)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(got, []byte{0xff, 0xfe, 0xfd}) {
		t.Errorf("Bytes = %x", got)
	}
}

func TestBytes_SpillPathInvalidUTF8(t *testing.T) {
	c := New()
	buf := hostbuf.New(16)
	copy(buf.Image()[hostbuf.HeaderSize:], []byte{0xff, 0xfe})
	buf.SetLength(-2)

	if _, err := c.Bytes(buf); errors.CodeOf(err) != errors.CodeInvalidUTF8 {
		t.Errorf("Bytes = %v, want invalid_utf8", err)
	}
}

func TestBytes_SpillFileMissing(t *testing.T) {
	c := New()
	buf := spillIndicator(t, filepath.Join(t.TempDir(), "gone"))

	if _, err := c.Bytes(buf); errors.CodeOf(err) != errors.CodeReadTempFileFailed {
		t.Errorf("Bytes = %v, want read_temp_file_failed", err)
	}
}

func TestBytes_SpillDecodeIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payload")
	want := bytes.Repeat([]byte("z"), 100)
	if err := os.WriteFile(path, want, 0o600); err != nil {
		t.Fatal(err)
	}
	c := New()
	buf := spillIndicator(t, path)

	for i := 0; i < 3; i++ {
		got, err := c.Bytes(buf)
		if err != nil {
			t.Fatalf("decode %d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("decode %d: payload mismatch", i)
		}
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("decode must not delete the spill file: %v", err)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	doc := map[string]any{
		"test":  "foo",
		"test2": "kittens",
		"inner": map[string]any{"path": "/a/b"},
	}

	codecs := []payload.Codec{payload.JSON{}, payload.MsgPack{}, payload.CBOR{}}
	for _, pc := range codecs {
		t.Run(pc.Name(), func(t *testing.T) {
			c := New(WithPayloadCodec(pc), WithTempDir(t.TempDir()))
			buf := hostbuf.New(256)

			if err := c.PutJSON(doc, buf); err != nil {
				t.Fatalf("PutJSON: %v", err)
			}
			got, err := c.JSON(buf)
			if err != nil {
				t.Fatalf("JSON: %v", err)
			}
			if diff := cmp.Diff(doc, got); diff != "" {
				t.Errorf("document mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSON_DecodeFailure(t *testing.T) {
	c := New()
	buf := hostbuf.New(32)
	if err := c.PutBytes([]byte("{not json"), buf); err != nil {
		t.Fatalf("PutBytes: %v", err)
	}

	if _, err := c.JSON(buf); errors.CodeOf(err) != errors.CodeJSONDecodeFailed {
		t.Errorf("JSON = %v, want json_decode_failed", err)
	}
}

func TestJSON_IOFailureSurfacesFirst(t *testing.T) {
	c := New()
	buf := spillIndicator(t, filepath.Join(t.TempDir(), "gone"))

	// The missing spill file is reported, not a parse failure.
	if _, err := c.JSON(buf); errors.CodeOf(err) != errors.CodeReadTempFileFailed {
		t.Errorf("JSON = %v, want read_temp_file_failed", err)
	}
}
