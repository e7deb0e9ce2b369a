package payload

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// String-valued documents round-trip identically in every format; numeric
// concrete types differ per codec and are checked separately.
var stringDoc = map[string]any{
	"name": "hostbuf",
	"kind": "buffer",
	"nested": map[string]any{
		"path": "/tmp/hostbuf-spill",
	},
}

func TestCodecs_RoundTripStrings(t *testing.T) {
	codecs := []Codec{JSON{}, MsgPack{}, CBOR{}}

	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(stringDoc)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			got, err := c.Unmarshal(data)
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if diff := cmp.Diff(stringDoc, got); diff != "" {
				t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSON_Numbers(t *testing.T) {
	c := JSON{}
	data, err := c.Marshal(map[string]any{"a": 1})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := c.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	// encoding/json decodes numbers into float64
	if v, ok := got["a"].(float64); !ok || v != 1 {
		t.Errorf(`got["a"] = %v (%T), want float64(1)`, got["a"], got["a"])
	}
}

func TestCodecs_RejectGarbage(t *testing.T) {
	garbage := []byte{0xff, 0xfe, 0x00, 0x01}

	for _, c := range []Codec{JSON{}, CBOR{}} {
		t.Run(c.Name(), func(t *testing.T) {
			if _, err := c.Unmarshal(garbage); err == nil {
				t.Error("expected error for garbage input")
			}
		})
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"", "json", true},
		{"json", "json", true},
		{"msgpack", "msgpack", true},
		{"cbor", "cbor", true},
		{"xml", "", false},
	}

	for _, tc := range tests {
		c, ok := ByName(tc.name)
		if ok != tc.ok {
			t.Errorf("ByName(%q): ok = %v, want %v", tc.name, ok, tc.ok)
			continue
		}
		if ok && c.Name() != tc.want {
			t.Errorf("ByName(%q).Name() = %q, want %q", tc.name, c.Name(), tc.want)
		}
	}
}

func TestDefault(t *testing.T) {
	if Default().Name() != "json" {
		t.Errorf("Default() = %q, want json", Default().Name())
	}
}
