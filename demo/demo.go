// Package demo shows how an FFI-facing library is built on the buffer
// protocol. Every buffer-taking function returns a sentinel code from the
// errors package, multiplexing success and failure through the single
// scalar channel a foreign host understands.
package demo

import (
	"encoding/base64"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wippyai/hostbuf"
	"github.com/wippyai/hostbuf/codec"
	"github.com/wippyai/hostbuf/errors"
)

var coder = codec.New()

// ToUpper reads a UTF-8 string from in and writes its upper-cased form to out.
func ToUpper(in, out *hostbuf.Buffer) int32 {
	s, err := coder.String(in)
	if err != nil {
		return errors.CodeOf(err)
	}
	if err := coder.PutString(strings.ToUpper(s), out); err != nil {
		return errors.CodeOf(err)
	}
	return errors.CodeNone
}

// Base64Encode reads raw bytes from in and writes their standard base64
// encoding to out.
func Base64Encode(in, out *hostbuf.Buffer) int32 {
	data, err := coder.Bytes(in)
	if err != nil {
		return errors.CodeOf(err)
	}
	if err := coder.PutString(base64.StdEncoding.EncodeToString(data), out); err != nil {
		return errors.CodeOf(err)
	}
	return errors.CodeNone
}

// FilterJSON reads a document from in, drops every top-level string property
// whose value contains disallowed, and writes the filtered document to out.
func FilterJSON(in, out *hostbuf.Buffer, disallowed string) int32 {
	doc, err := coder.JSON(in)
	if err != nil {
		return errors.CodeOf(err)
	}
	for k, v := range doc {
		if s, ok := v.(string); ok && strings.Contains(s, disallowed) {
			delete(doc, k)
		}
	}
	if err := coder.PutJSON(doc, out); err != nil {
		return errors.CodeOf(err)
	}
	return errors.CodeNone
}

// Scalar-returning functions pass values directly; overflow wraps.

func AddInt32(a, b int32) int32 { return a + b }

func AddInt64(a, b int64) int64 { return a + b }

func AddDouble(a, b float64) float64 { return a + b }

var counter atomic.Int64

// ReadCounter returns the current value of the demo counter.
func ReadCounter() int64 {
	return counter.Load()
}

// StartCounter spawns a goroutine bumping the counter every interval until
// the returned stop function is called.
func StartCounter(interval time.Duration) (stop func()) {
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				counter.Add(1)
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

// SleepTest blocks the calling thread for the given number of seconds,
// demonstrating that long native calls do not disturb buffer state.
func SleepTest(seconds int32) {
	time.Sleep(time.Duration(seconds) * time.Second)
}
